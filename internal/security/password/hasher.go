// Package password provides one-way password hashing and verification.
//
// Hashes use argon2id with a per-call random salt and are encoded in the
// standard form $argon2id$v=19$m=MEMORY,t=TIME,p=THREADS$SALT$HASH, so the
// parameters used at hash time travel with the hash and verification keeps
// working after defaults change.
package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Hasher hashes plaintext passwords and verifies candidates against a
// previously produced hash.
type Hasher interface {
	// Hash returns an encoded, salted digest of the plaintext.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches the encoded hash. It returns
	// false, never an error, on malformed input, so it is safe to call on
	// arbitrary stored values.
	Verify(encodedHash, plaintext string) bool
}

// Argon2Hasher implements Hasher using argon2id.
type Argon2Hasher struct {
	time    uint32
	memory  uint32
	threads uint8
	keyLen  uint32
	saltLen int
}

// Option configures an Argon2Hasher.
type Option func(*Argon2Hasher)

// WithTime sets the number of iterations.
func WithTime(t uint32) Option {
	return func(h *Argon2Hasher) { h.time = t }
}

// WithMemory sets the memory usage in KiB.
func WithMemory(m uint32) Option {
	return func(h *Argon2Hasher) { h.memory = m }
}

// WithThreads sets the parallelism.
func WithThreads(t uint8) Option {
	return func(h *Argon2Hasher) { h.threads = t }
}

// NewArgon2Hasher creates an argon2id hasher. Defaults follow the OWASP
// recommendation: time=1, memory=64MB, threads=4.
func NewArgon2Hasher(opts ...Option) *Argon2Hasher {
	h := &Argon2Hasher{
		time:    1,
		memory:  64 * 1024,
		threads: 4,
		keyLen:  32,
		saltLen: 16,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Argon2Hasher) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", errors.New("password: empty plaintext")
	}

	salt := make([]byte, h.saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("password: generate salt: %w", err)
	}

	hash := argon2.IDKey([]byte(plaintext), salt, h.time, h.memory, h.threads, h.keyLen)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.memory, h.time, h.threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	)
	return encoded, nil
}

func (h *Argon2Hasher) Verify(encodedHash, plaintext string) bool {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return false
	}

	var memory, time uint32
	var threads uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return false
	}
	// argon2.IDKey panics on zero rounds or zero parallelism.
	if time < 1 || threads < 1 {
		return false
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false
	}
	expected, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(expected) == 0 {
		return false
	}

	hash := argon2.IDKey([]byte(plaintext), salt, time, memory, threads, uint32(len(expected)))

	return subtle.ConstantTimeCompare(hash, expected) == 1
}
