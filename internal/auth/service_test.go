package auth

import "testing"

func TestLoginRejectsWrongCredentials(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	s := NewService("admin", "s3cret")

	if _, err := s.Login("admin", "wrong"); err == nil {
		t.Fatal("expected error for wrong password")
	}
	if _, err := s.Login("someone", "s3cret"); err == nil {
		t.Fatal("expected error for wrong username")
	}
}

func TestLoginIssuesValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	s := NewService("admin", "s3cret")

	token, err := s.Login("admin", "s3cret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	username, role, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if username != "admin" || role != "ADMIN" {
		t.Fatalf("unexpected claims: %s %s", username, role)
	}
}

func TestLoginFailsWhenUnconfigured(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	s := NewService("", "")

	if _, err := s.Login("admin", "s3cret"); err == nil {
		t.Fatal("expected error when admin account not configured")
	}
}
