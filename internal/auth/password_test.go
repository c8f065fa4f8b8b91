package auth

import (
	"strings"
	"testing"
)

func TestHashPassword_Format(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if !strings.HasPrefix(hash, "$argon2id$v=19$") {
		t.Errorf("hash = %q, want $argon2id$v=19$ prefix", hash)
	}
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("secret-password")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	if !VerifyPassword("secret-password", hash) {
		t.Error("VerifyPassword should accept the original password")
	}
	if VerifyPassword("wrong-password", hash) {
		t.Error("VerifyPassword should reject a wrong password")
	}
	if VerifyPassword("secret-password", "not-a-hash") {
		t.Error("VerifyPassword should reject a malformed hash")
	}
}

func TestHashPassword_SaltsDiffer(t *testing.T) {
	h1, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	h2, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if h1 == h2 {
		t.Error("two hashes of the same password should not be identical")
	}
}
