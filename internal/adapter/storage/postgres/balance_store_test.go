package postgres

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBalanceStore_Load(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	a := uuid.New()
	b := uuid.New()
	rows := pgxmock.NewRows([]string{"identity", "amount"}).
		AddRow(a, int64(100)).
		AddRow(b, int64(2500))
	mock.ExpectQuery("SELECT identity, amount FROM balances").WillReturnRows(rows)

	store := NewBalanceStore(mock)
	balances, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[uuid.UUID]int64{a: 100, b: 2500}, balances)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBalanceStore_Put(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	id := uuid.New()
	mock.ExpectExec("INSERT INTO balances").
		WithArgs(id, int64(450)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	store := NewBalanceStore(mock)
	assert.NoError(t, store.Put(context.Background(), id, 450))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBalanceStore_Delete(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	id := uuid.New()
	mock.ExpectExec("DELETE FROM balances").
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	store := NewBalanceStore(mock)
	assert.NoError(t, store.Delete(context.Background(), id))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBalanceStore_SaveAll(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	id := uuid.New()
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM balances").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectExec("INSERT INTO balances").
		WithArgs(id, int64(900)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()
	mock.ExpectRollback()

	store := NewBalanceStore(mock)
	assert.NoError(t, store.SaveAll(context.Background(), map[uuid.UUID]int64{id: 900}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBalanceStore_SaveAll_InsertFailureRollsBack(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	id := uuid.New()
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM balances").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectExec("INSERT INTO balances").
		WithArgs(id, int64(1)).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	store := NewBalanceStore(mock)
	assert.Error(t, store.SaveAll(context.Background(), map[uuid.UUID]int64{id: 1}))
	assert.NoError(t, mock.ExpectationsWereMet())
}
