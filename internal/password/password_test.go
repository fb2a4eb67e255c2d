package password

import (
	"strings"
	"testing"
)

func TestHashVerify_RoundTrip(t *testing.T) {
	hash, err := Hash("Sup3rSecret")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if hash == "Sup3rSecret" {
		t.Fatalf("hash equals plaintext")
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Fatalf("unexpected hash encoding: %s", hash)
	}

	ok, err := Verify("Sup3rSecret", hash)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if !ok {
		t.Fatalf("expected match for correct password")
	}
}

func TestVerify_WrongPassword(t *testing.T) {
	hash, err := Hash("Sup3rSecret")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}

	ok, err := Verify("wr0ngPassword", hash)
	if err != nil {
		t.Fatalf("wrong password must not be an error, got: %v", err)
	}
	if ok {
		t.Fatalf("expected mismatch for wrong password")
	}
}

func TestHash_SaltedPerCall(t *testing.T) {
	h1, err := Hash("Sup3rSecret")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	h2, err := Hash("Sup3rSecret")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("two hashes of the same password must differ")
	}
}

func TestVerify_MalformedHash(t *testing.T) {
	if _, err := Verify("anything", "not-a-bcrypt-hash"); err == nil {
		t.Fatalf("expected error for malformed encoded hash")
	}
}
