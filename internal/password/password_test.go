package password_test

import (
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/lbertrand/boutique/internal/password"
)

func TestHashAndVerify(t *testing.T) {
	digest, err := password.Hash("secret123!", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if digest == "secret123!" {
		t.Fatal("digest equals plaintext")
	}

	if !password.Verify(digest, "secret123!") {
		t.Error("verify rejected correct password")
	}
	if password.Verify(digest, "wrong") {
		t.Error("verify accepted wrong password")
	}
}

func TestHashClampsInvalidCost(t *testing.T) {
	digest, err := password.Hash("secret", 99)
	if err != nil {
		t.Fatalf("hash with out-of-range cost: %v", err)
	}
	cost, err := bcrypt.Cost([]byte(digest))
	if err != nil {
		t.Fatalf("cost: %v", err)
	}
	if cost != bcrypt.DefaultCost {
		t.Errorf("cost = %d, want %d", cost, bcrypt.DefaultCost)
	}
}
