package session

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestIssueAndVerify(t *testing.T) {
	now := time.Date(2021, 11, 26, 10, 0, 0, 0, time.UTC)
	tokens := NewTokens([]byte("test-secret"), time.Hour)
	tokens.now = func() time.Time { return now }

	token, expires, err := tokens.Issue("user-1", "keith")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if want := now.Add(time.Hour); !expires.Equal(want) {
		t.Errorf("Issue() expires = %v, want %v", expires, want)
	}

	claims, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if claims.UserID != "user-1" || claims.UserName != "keith" {
		t.Errorf("Verify() claims = %+v", claims)
	}
}

func TestVerifyRejects(t *testing.T) {
	now := time.Date(2021, 11, 26, 10, 0, 0, 0, time.UTC)
	tokens := NewTokens([]byte("test-secret"), time.Hour)
	tokens.now = func() time.Time { return now }
	valid, _, err := tokens.Issue("user-1", "keith")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	other := NewTokens([]byte("other-secret"), time.Hour)
	other.now = tokens.now
	forged, _, err := other.Issue("user-1", "keith")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	mallory, _, err := tokens.Issue("user-2", "mallory")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	parts := strings.Split(valid, ".")
	tampered := parts[0] + "." + strings.Split(mallory, ".")[1] + "." + parts[2]

	later := NewTokens([]byte("test-secret"), time.Hour)
	later.now = func() time.Time { return now.Add(2 * time.Hour) }

	tests := []struct {
		name   string
		tokens *Tokens
		token  string
	}{
		{"garbage", tokens, "not-a-token"},
		{"wrong key", tokens, forged},
		{"expired", later, valid},
		{"tampered", tokens, tampered},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.tokens.Verify(tt.token)
			if !errors.Is(err, ErrInvalidToken) {
				t.Errorf("Verify() error = %v, want %v", err, ErrInvalidToken)
			}
		})
	}
}
