package auth

import (
	"strings"
	"testing"
)

func TestHashPassword_ProducesPHCFormat(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword() error: %v", err)
	}

	if !strings.HasPrefix(hash, "$argon2id$") {
		t.Errorf("hash = %q, want $argon2id$ prefix", hash)
	}
	if parts := strings.Split(hash, "$"); len(parts) != 6 {
		t.Errorf("hash has %d $-delimited parts, want 6", len(parts))
	}
}

func TestHashPassword_SaltVaries(t *testing.T) {
	h1, err := HashPassword("same password")
	if err != nil {
		t.Fatalf("HashPassword() error: %v", err)
	}
	h2, err := HashPassword("same password")
	if err != nil {
		t.Fatalf("HashPassword() error: %v", err)
	}

	if h1 == h2 {
		t.Error("two hashes of the same password are identical; salt is not varying")
	}
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword() error: %v", err)
	}

	if !VerifyPassword("s3cret", hash) {
		t.Error("VerifyPassword() = false for correct password")
	}
	if VerifyPassword("wrong", hash) {
		t.Error("VerifyPassword() = true for wrong password")
	}
	if VerifyPassword("", hash) {
		t.Error("VerifyPassword() = true for empty password")
	}
}

func TestVerifyPassword_MalformedHashReturnsFalse(t *testing.T) {
	tests := []struct {
		name string
		hash string
	}{
		{"empty", ""},
		{"garbage", "not-a-hash"},
		{"wrong algorithm", "$bcrypt$v=19$m=65536,t=3,p=1$c2FsdA$aGFzaA"},
		{"too few parts", "$argon2id$v=19$m=65536,t=3,p=1"},
		{"bad salt encoding", "$argon2id$v=19$m=65536,t=3,p=1$!!!$aGFzaA"},
		{"bad hash encoding", "$argon2id$v=19$m=65536,t=3,p=1$c2FsdA$!!!"},
		{"bad params", "$argon2id$v=19$m=banana$c2FsdA$aGFzaA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if VerifyPassword("anything", tt.hash) {
				t.Errorf("VerifyPassword() = true for malformed hash %q", tt.hash)
			}
		})
	}
}

func TestVerifyPassword_RoundTripUnicode(t *testing.T) {
	password := "pässwörd-日本語-🔑"
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() error: %v", err)
	}
	if !VerifyPassword(password, hash) {
		t.Error("VerifyPassword() = false for unicode password round-trip")
	}
}
