package api

import (
	"testing"
	"time"

	"github.com/1970jjh/minusproject/internal/constants"
)

func TestAdminTokenRoundTrip(t *testing.T) {
	t.Setenv(constants.EnvSessionSecret, "test-secret")

	token, err := createAdminToken(time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := validateAdminToken(token); err != nil {
		t.Fatalf("expected valid token, got %v", err)
	}
}

func TestAdminTokenRejectsTampering(t *testing.T) {
	t.Setenv(constants.EnvSessionSecret, "test-secret")

	token, err := createAdminToken(time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := validateAdminToken(token + "x"); err == nil {
		t.Fatalf("expected tampered token to be rejected")
	}

	t.Setenv(constants.EnvSessionSecret, "other-secret")
	if err := validateAdminToken(token); err == nil {
		t.Fatalf("expected token signed with old secret to be rejected")
	}
}

func TestAdminTokenExpires(t *testing.T) {
	t.Setenv(constants.EnvSessionSecret, "test-secret")

	token, err := createAdminToken(-time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := validateAdminToken(token); err == nil {
		t.Fatalf("expected expired token to be rejected")
	}
}
