package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/intern-portal/models"
	"github.com/golang-jwt/jwt/v5"
)

func TestSessionContext(t *testing.T) {
	if _, ok := GetSessionFromContext(context.Background()); ok {
		t.Fatal("expected no session in empty context")
	}
	if _, ok := GetCPFFromContext(context.Background()); ok {
		t.Fatal("expected no cpf in empty context")
	}

	session := models.Session{Claims: models.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "52998224725"},
		Role:             models.RoleCandidate,
	}}
	ctx := WithSession(context.Background(), session)

	got, ok := GetSessionFromContext(ctx)
	if !ok || got.Claims.Role != models.RoleCandidate {
		t.Fatalf("expected stored session, got %+v ok=%v", got, ok)
	}
	cpf, ok := GetCPFFromContext(ctx)
	if !ok || cpf != "52998224725" {
		t.Fatalf("expected cpf 52998224725, got %q ok=%v", cpf, ok)
	}
}

func TestContextKey_String(t *testing.T) {
	if SessionCtxKey.String() != "session" {
		t.Errorf("unexpected key name %q", SessionCtxKey.String())
	}
}
