package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"postboard/internal/common"
)

func TestIssueAndVerify_Success(t *testing.T) {
	t.Parallel()

	svc := NewTokenService([]byte("super-secret"), time.Hour, 0)
	userID := "user-123"

	tok, err := svc.Issue(userID)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	claims, err := svc.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if claims.Subject != userID {
		t.Fatalf("subject mismatch: got %q want %q", claims.Subject, userID)
	}
	if claims.ID == "" {
		t.Fatalf("expected non-empty token id")
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	svc := NewTokenService([]byte("secret"), -time.Hour, 0)

	tok, err := svc.Issue("u1")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = svc.Verify(tok)
	if err == nil {
		t.Fatalf("expected error for expired token, got nil")
	}
	if !errors.Is(err, common.ErrTokenExpired) {
		t.Fatalf("expected common.ErrTokenExpired, got %v", err)
	}
}

func TestVerify_LeewayAbsorbsClockSkew(t *testing.T) {
	t.Parallel()

	// expired two seconds ago, but the grace window is ten seconds
	svc := NewTokenService([]byte("secret"), -2*time.Second, 10*time.Second)

	tok, err := svc.Issue("u1")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	claims, err := svc.Verify(tok)
	if err != nil {
		t.Fatalf("expected token inside leeway to verify, got %v", err)
	}
	if claims.Subject != "u1" {
		t.Fatalf("subject mismatch: got %q", claims.Subject)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewTokenService([]byte("right-secret"), time.Hour, 0)
	verifier := NewTokenService([]byte("wrong-secret"), time.Hour, 0)

	tok, err := issuer.Issue("u2")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = verifier.Verify(tok)
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken, got %v", err)
	}
}

func TestVerify_TamperedSignature(t *testing.T) {
	t.Parallel()

	svc := NewTokenService([]byte("secret"), time.Hour, 0)

	tok, err := svc.Issue("u3")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	parts := strings.Split(tok, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %q", tok)
	}
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = svc.Verify(tampered)
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken, got %v", err)
	}
}

func TestVerify_SwappedPayload(t *testing.T) {
	t.Parallel()

	svc := NewTokenService([]byte("secret"), time.Hour, 0)

	tokA, err := svc.Issue("user-a")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	tokB, err := svc.Issue("user-b")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	partsA := strings.Split(tokA, ".")
	partsB := strings.Split(tokB, ".")
	frankenstein := partsA[0] + "." + partsA[1] + "." + partsB[2]

	// must never verify as a different subject
	_, err = svc.Verify(frankenstein)
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken, got %v", err)
	}
}

func TestVerify_MalformedString(t *testing.T) {
	t.Parallel()

	svc := NewTokenService([]byte("k"), time.Hour, 0)

	for _, tok := range []string{"not.a.jwt", "", "abc"} {
		_, err := svc.Verify(tok)
		if !errors.Is(err, common.ErrTokenMalformed) {
			t.Fatalf("token %q: expected common.ErrTokenMalformed, got %v", tok, err)
		}
	}
}
