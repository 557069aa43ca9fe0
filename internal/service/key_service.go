package service

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters for admin access keys. Single-shot verification on an
// admin endpoint, so one pass over 64MB is plenty.
const (
	argon2Time    = 1
	argon2Memory  = 64 * 1024
	argon2Threads = 4
	argon2KeyLen  = 32
	argon2SaltLen = 16
)

// Argon2KeyService implements ports.KeyVerifier using Argon2id. The admin
// access key is configured as an encoded hash, never in the clear.
type Argon2KeyService struct{}

func NewArgon2KeyService() *Argon2KeyService {
	return &Argon2KeyService{}
}

// Hash derives an encoded Argon2id hash of the key, in the standard
// $argon2id$v=19$m=...,t=...,p=...$<salt>$<hash> form.
func (s *Argon2KeyService) Hash(key string) (string, error) {
	salt := make([]byte, argon2SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("reading salt: %w", err)
	}

	derived := argon2.IDKey([]byte(key), salt, argon2Time, argon2Memory, argon2Threads, argon2KeyLen)

	encoded := fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		argon2Memory, argon2Time, argon2Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(derived),
	)
	return encoded, nil
}

// Verify checks a key against an encoded Argon2id hash in constant time.
// The hash's own parameters are honored, so keys hashed under older cost
// settings keep verifying.
func (s *Argon2KeyService) Verify(key string, encodedHash string) (bool, error) {
	salt, want, p, err := parseEncodedKey(encodedHash)
	if err != nil {
		return false, err
	}

	got := argon2.IDKey([]byte(key), salt, p.time, p.memory, p.threads, p.keyLen)

	return subtle.ConstantTimeCompare(want, got) == 1, nil
}

type argon2Params struct {
	memory  uint32
	time    uint32
	threads uint8
	keyLen  uint32
}

func parseEncodedKey(encoded string) (salt, hash []byte, p argon2Params, err error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 {
		return nil, nil, p, fmt.Errorf("malformed key hash: %d segments", len(parts))
	}
	if parts[1] != "argon2id" {
		return nil, nil, p, fmt.Errorf("unsupported key hash algorithm %q", parts[1])
	}

	var version int
	if _, err = fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return nil, nil, p, fmt.Errorf("parsing key hash version: %w", err)
	}
	if version != argon2.Version {
		return nil, nil, p, fmt.Errorf("incompatible argon2 version %d", version)
	}

	if _, err = fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.memory, &p.time, &p.threads); err != nil {
		return nil, nil, p, fmt.Errorf("parsing key hash params: %w", err)
	}

	if salt, err = base64.RawStdEncoding.DecodeString(parts[4]); err != nil {
		return nil, nil, p, fmt.Errorf("decoding key hash salt: %w", err)
	}
	if hash, err = base64.RawStdEncoding.DecodeString(parts[5]); err != nil {
		return nil, nil, p, fmt.Errorf("decoding key hash digest: %w", err)
	}
	p.keyLen = uint32(len(hash))

	return salt, hash, p, nil
}
