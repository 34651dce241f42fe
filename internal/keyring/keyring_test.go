package keyring

import (
	"testing"

	gokeyring "github.com/zalando/go-keyring"
)

func TestSetAndGetToken(t *testing.T) {
	// Use mock keyring for testing
	gokeyring.MockInit()

	testToken := "eyJhbGciOiJIUzI1NiJ9.test-session-token"

	if err := SetToken(testToken); err != nil {
		t.Fatalf("SetToken() failed: %v", err)
	}

	retrieved, err := GetToken()
	if err != nil {
		t.Fatalf("GetToken() failed: %v", err)
	}

	if retrieved != testToken {
		t.Errorf("GetToken() = %q, want %q", retrieved, testToken)
	}
}

func TestSetTokenEmpty(t *testing.T) {
	gokeyring.MockInit()

	if err := SetToken(""); err == nil {
		t.Error("SetToken(\"\") should return an error")
	}
}

func TestGetTokenNotFound(t *testing.T) {
	gokeyring.MockInit()

	// Ensure nothing is stored
	_ = DeleteToken()

	if _, err := GetToken(); err != ErrNotFound {
		t.Errorf("GetToken() error = %v, want %v", err, ErrNotFound)
	}
}

func TestDeleteToken(t *testing.T) {
	gokeyring.MockInit()

	if err := SetToken("some-token"); err != nil {
		t.Fatalf("SetToken() failed: %v", err)
	}

	if err := DeleteToken(); err != nil {
		t.Fatalf("DeleteToken() failed: %v", err)
	}

	if _, err := GetToken(); err != ErrNotFound {
		t.Errorf("after DeleteToken(), GetToken() error = %v, want %v", err, ErrNotFound)
	}
}

func TestDeleteTokenNotFound(t *testing.T) {
	gokeyring.MockInit()

	_ = DeleteToken()

	if err := DeleteToken(); err != ErrNotFound {
		t.Errorf("DeleteToken() error = %v, want %v", err, ErrNotFound)
	}
}

func TestIsAvailable(t *testing.T) {
	gokeyring.MockInit()

	if !IsAvailable() {
		t.Error("IsAvailable() = false, want true in mock mode")
	}
}
