package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/kevinmliu/vestibule/pkg/vestibule/config"
)

func TestStaticVerify(t *testing.T) {
	checker := NewStatic("admin", "1234")

	tests := []struct {
		name     string
		username string
		password string
		want     bool
	}{
		{"exact match", "admin", "1234", true},
		{"wrong password", "admin", "4321", false},
		{"wrong username", "root", "1234", false},
		{"empty fields", "", "", false},
		{"username as password", "admin", "admin", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := checker.Verify(tt.username, tt.password); got != tt.want {
				t.Errorf("Verify(%q, %q) = %v, want %v", tt.username, tt.password, got, tt.want)
			}
		})
	}
}

func TestStaticRecoverPassword(t *testing.T) {
	checker := NewStatic("admin", "1234")

	if got, ok := checker.RecoverPassword("admin"); !ok || got != "1234" {
		t.Errorf("RecoverPassword(admin) = %q, %v; want 1234, true", got, ok)
	}
	if _, ok := checker.RecoverPassword("bob"); ok {
		t.Error("RecoverPassword(bob) hit for an unknown username")
	}
}

func TestHashedVerify(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("1234"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}

	checker, err := NewHashed("admin", string(hash))
	if err != nil {
		t.Fatalf("NewHashed() = %v", err)
	}

	if !checker.Verify("admin", "1234") {
		t.Error("Verify rejected the correct pair")
	}
	if checker.Verify("admin", "4321") {
		t.Error("Verify accepted a wrong password")
	}
	if checker.Verify("bob", "1234") {
		t.Error("Verify accepted a wrong username")
	}
}

func TestHashedRejectsMalformedHash(t *testing.T) {
	if _, err := NewHashed("admin", "not-a-bcrypt-hash"); err == nil {
		t.Fatal("NewHashed accepted a malformed hash")
	}
}

func TestHashedNeverRecovers(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("1234"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	checker, err := NewHashed("admin", string(hash))
	if err != nil {
		t.Fatal(err)
	}

	if _, ok := checker.RecoverPassword("admin"); ok {
		t.Fatal("RecoverPassword revealed a value for a hashed secret")
	}
}

func TestFromConfig(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		creds   config.Credentials
		wantErr bool
		verify  [2]string
		wantOK  bool
	}{
		{
			name:   "plain pair",
			creds:  config.Credentials{Username: "admin", Password: "1234"},
			verify: [2]string{"admin", "1234"},
			wantOK: true,
		},
		{
			name:   "hash takes precedence",
			creds:  config.Credentials{Username: "admin", Password: "1234", PasswordHash: string(hash)},
			verify: [2]string{"admin", "secret"},
			wantOK: true,
		},
		{
			name:    "missing username",
			creds:   config.Credentials{Password: "1234"},
			wantErr: true,
		},
		{
			name:    "missing secret",
			creds:   config.Credentials{Username: "admin"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checker, err := FromConfig(tt.creds)
			if tt.wantErr {
				if err == nil {
					t.Fatal("FromConfig did not fail")
				}
				return
			}
			if err != nil {
				t.Fatalf("FromConfig() = %v", err)
			}
			if got := checker.Verify(tt.verify[0], tt.verify[1]); got != tt.wantOK {
				t.Errorf("Verify(%q, %q) = %v, want %v", tt.verify[0], tt.verify[1], got, tt.wantOK)
			}
		})
	}
}
