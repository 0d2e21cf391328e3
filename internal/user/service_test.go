package user

import (
	"testing"
)

func TestRegister_HashesPassword(t *testing.T) {
	svc := NewService(NewInMemoryRepository(nil))

	created, err := svc.Register(User{Email: "marie@example.com", Password: "s3cret", FullName: "Marie Dubois"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected an assigned id")
	}
	if created.Password == "s3cret" {
		t.Fatal("password stored in clear")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := NewService(NewInMemoryRepository(nil))

	if _, err := svc.Register(User{Email: "marie@example.com", Password: "s3cret"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, err := svc.Register(User{Email: "marie@example.com", Password: "other"}); err != ErrEmailExists {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	svc := NewService(NewInMemoryRepository(nil))

	if _, err := svc.Register(User{Email: "marie@example.com", Password: "s3cret"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	u, err := svc.Authenticate("marie@example.com", "s3cret")
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if u.Email != "marie@example.com" {
		t.Fatalf("unexpected user %+v", u)
	}

	if _, err := svc.Authenticate("marie@example.com", "wrong"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Authenticate("nobody@example.com", "s3cret"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
