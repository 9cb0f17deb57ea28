package password

import (
	"strings"
	"testing"
)

// fastHasher returns a hasher with reduced parameters so tests stay quick.
func fastHasher() *Argon2Hasher {
	return NewArgon2Hasher(WithTime(1), WithMemory(1024), WithThreads(1))
}

func TestHashVerify_RoundTrip(t *testing.T) {
	h := fastHasher()

	encoded, err := h.Hash("correct horse battery staple")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if !strings.HasPrefix(encoded, "$argon2id$") {
		t.Fatalf("unexpected hash format: %s", encoded)
	}
	if strings.Contains(encoded, "correct horse") {
		t.Fatalf("plaintext leaked into hash")
	}

	if !h.Verify(encoded, "correct horse battery staple") {
		t.Fatalf("Verify rejected the original password")
	}
	if h.Verify(encoded, "wrong password") {
		t.Fatalf("Verify accepted a different password")
	}
}

func TestHash_SaltedPerCall(t *testing.T) {
	h := fastHasher()

	first, err := h.Hash("pw1")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	second, err := h.Hash("pw1")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}

	if first == second {
		t.Fatalf("two hashes of the same password are identical")
	}
	if !h.Verify(first, "pw1") || !h.Verify(second, "pw1") {
		t.Fatalf("both salted hashes must verify against the same password")
	}
}

func TestHash_EmptyPlaintext(t *testing.T) {
	h := fastHasher()
	if _, err := h.Hash(""); err == nil {
		t.Fatalf("expected error for empty plaintext")
	}
}

func TestVerify_MalformedHash(t *testing.T) {
	h := fastHasher()

	malformed := []string{
		"",
		"not-a-hash",
		"$argon2id$v=19$m=1024,t=1,p=1$short",
		"$argon2id$v=19$m=x,t=y,p=z$AAAA$BBBB",
		"$bcrypt$v=19$m=1024,t=1,p=1$AAAA$BBBB",
		"$argon2id$v=19$m=1024,t=1,p=1$!!!!$BBBB",
		"$argon2id$v=19$m=1024,t=0,p=1$AAAA$BBBB",
		"$argon2id$v=19$m=1024,t=1,p=0$AAAA$BBBB",
	}
	for _, in := range malformed {
		if h.Verify(in, "anything") {
			t.Fatalf("Verify accepted malformed hash %q", in)
		}
	}
}

func TestVerify_ParametersFromHash(t *testing.T) {
	// A hash produced with one parameter set must verify on a hasher
	// configured with another: parameters travel inside the encoding.
	old := NewArgon2Hasher(WithTime(2), WithMemory(2048), WithThreads(1))
	encoded, err := old.Hash("pw")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}

	current := fastHasher()
	if !current.Verify(encoded, "pw") {
		t.Fatalf("hash with embedded parameters did not verify")
	}
}
