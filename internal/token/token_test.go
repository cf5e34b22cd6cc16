package token

import (
	"testing"
	"time"

	"github.com/MedCareServices01/clinic-scheduler/internal/domain/scheduling"
)

func TestIssueAndVerify(t *testing.T) {
	codec := NewCodec("test-secret")

	signed, err := codec.Issue("ana@example.test", map[string]string{
		"role":      "patient",
		"patientId": "7",
	})
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	subject, err := codec.VerifySubject(signed)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if subject != "ana@example.test" {
		t.Fatalf("subject = %q", subject)
	}

	claims, err := codec.VerifyClaims(signed)
	if err != nil {
		t.Fatalf("verify claims failed: %v", err)
	}
	if claims["role"] != "patient" || claims["patientId"] != "7" {
		t.Fatalf("claims = %v", claims)
	}
	if claims["jti"] == "" {
		t.Fatal("token must carry a unique id")
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	codec := NewCodec("test-secret")

	issuedAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	codec.now = func() time.Time { return issuedAt }

	signed, err := codec.Issue("ana@example.test", nil)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	// Still valid just inside the window.
	codec.now = func() time.Time { return issuedAt.Add(TokenValidity - time.Minute) }
	if _, err := codec.VerifySubject(signed); err != nil {
		t.Fatalf("token must still verify inside the window: %v", err)
	}

	// Rejected once past it.
	codec.now = func() time.Time { return issuedAt.Add(TokenValidity + time.Minute) }
	_, err = codec.VerifySubject(signed)
	if !scheduling.IsKind(err, scheduling.KindUnauthenticated) {
		t.Fatalf("expected Unauthenticated for expired token, got %v", err)
	}
}

func TestVerifyWrongKey(t *testing.T) {
	signed, err := NewCodec("key-one").Issue("ana@example.test", nil)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	_, err = NewCodec("key-two").VerifySubject(signed)
	if !scheduling.IsKind(err, scheduling.KindUnauthenticated) {
		t.Fatalf("expected Unauthenticated for wrong key, got %v", err)
	}
}

func TestVerifyGarbage(t *testing.T) {
	codec := NewCodec("test-secret")

	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := codec.VerifySubject(tok); !scheduling.IsKind(err, scheduling.KindUnauthenticated) {
			t.Fatalf("token %q: expected Unauthenticated, got %v", tok, err)
		}
	}
}
