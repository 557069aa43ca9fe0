package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrentTransfers hammers one payer with parallel transfers to verify
// the ledger never double-spends: exactly balance/amount transfers may
// succeed, the rest fail with insufficient funds, and money is conserved.
func TestConcurrentTransfers(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	payer := uuid.New()
	payee := uuid.New()
	app.ledger.SetBalance(t.Context(), payer, 1000)
	app.ledger.SetBalance(t.Context(), payee, 0)

	const workers = 50
	const amount = 100 // only 10 of 50 can succeed

	var succeeded, rejected atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			body := fmt.Sprintf(`{"from":"%s","to":"%s","amount":%d}`, payer, payee, amount)
			resp, err := http.Post(app.server.URL+"/api/v1/transfers", "application/json",
				bytes.NewBufferString(body))
			if err != nil {
				t.Error(err)
				return
			}
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()

			switch resp.StatusCode {
			case http.StatusOK:
				succeeded.Add(1)
			case http.StatusPaymentRequired:
				rejected.Add(1)
			default:
				t.Errorf("unexpected status %d", resp.StatusCode)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(10), succeeded.Load())
	assert.Equal(t, int64(40), rejected.Load())

	assert.Equal(t, int64(0), app.ledger.GetBalance(t.Context(), payer))
	assert.Equal(t, int64(1000), app.ledger.GetBalance(t.Context(), payee))
}

// TestConcurrentFulfillment races many fulfillers for a single buy request.
// Exactly one wins; the request is paid once and removed once.
func TestConcurrentFulfillment(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	requester := uuid.New()
	app.ledger.SetBalance(t.Context(), requester, 500)

	code, body := app.post(t, "/api/v1/market/requests", fmt.Sprintf(
		`{"type":"buy","requester":"%s","item":{"kind":"minecraft:iron_ingot","quantity":8},"price":200}`,
		requester))
	require.Equal(t, http.StatusCreated, code)
	reqID := int(data(t, body)["id"].(float64))

	const workers = 20
	fulfillers := make([]uuid.UUID, workers)
	for i := range fulfillers {
		fulfillers[i] = uuid.New()
	}

	var fulfilled, missed atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(f uuid.UUID) {
			defer wg.Done()
			payload := fmt.Sprintf(
				`{"fulfiller":"%s","items":[{"kind":"minecraft:iron_ingot","quantity":8}]}`, f)
			resp, err := http.Post(
				app.server.URL+fmt.Sprintf("/api/v1/market/requests/%d/fulfill", reqID),
				"application/json", bytes.NewBufferString(payload))
			if err != nil {
				t.Error(err)
				return
			}
			defer resp.Body.Close()
			raw, err := io.ReadAll(resp.Body)
			if err != nil {
				t.Error(err)
				return
			}

			var parsed struct {
				Data struct {
					Outcome string `json:"outcome"`
				} `json:"data"`
			}
			if err := json.Unmarshal(raw, &parsed); err != nil {
				t.Errorf("bad body %s: %v", raw, err)
				return
			}
			switch parsed.Data.Outcome {
			case "fulfilled":
				fulfilled.Add(1)
			case "not_found":
				missed.Add(1)
			default:
				t.Errorf("unexpected outcome %q", parsed.Data.Outcome)
			}
		}(fulfillers[i])
	}
	wg.Wait()

	assert.Equal(t, int64(1), fulfilled.Load())
	assert.Equal(t, int64(workers-1), missed.Load())

	// Paid exactly once.
	assert.Equal(t, int64(300), app.ledger.GetBalance(t.Context(), requester))

	// Exactly one fulfiller got paid 200 minus 5% tax on top of the
	// materialized starting balance.
	winners := 0
	for _, f := range fulfillers {
		if app.ledger.GetBalance(t.Context(), f) == 100+190 {
			winners++
		}
	}
	assert.Equal(t, 1, winners)

	// One delivery waits for the requester.
	assert.Len(t, app.market.GetDeliveries(requester), 1)
}
