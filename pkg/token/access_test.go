package token

import (
	"testing"
	"time"
)

var secret = []byte("test-secret")

func TestAccessTokenRoundTrip(t *testing.T) {
	tok, err := GenerateAccessToken("session-1", secret, time.Minute)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	claims, err := VerifyToken(tok, secret)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if claims.ID != "session-1" {
		t.Errorf("ID = %q, want session-1", claims.ID)
	}
}

func TestVerifyTokenRejects(t *testing.T) {
	valid, _ := GenerateAccessToken("session-1", secret, time.Minute)
	expired, _ := GenerateAccessToken("session-1", secret, -time.Minute)
	noID, _ := GenerateAccessToken("", secret, time.Minute)

	tests := []struct {
		name   string
		token  string
		secret []byte
	}{
		{"wrong secret", valid, []byte("other")},
		{"tampered", valid[:len(valid)-2] + "xx", secret},
		{"expired", expired, secret},
		{"empty session", noID, secret},
		{"garbage", "not-a-token", secret},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := VerifyToken(tt.token, tt.secret); err == nil {
				t.Error("expected error")
			}
		})
	}
}
