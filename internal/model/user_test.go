package model

import (
	"testing"
)

func TestPasswordLifecycle(t *testing.T) {
	user := &User{Name: "Alice", Email: "alice@lottery.com"}

	if err := user.SetPassword("secret1"); err != nil {
		t.Fatalf("unexpected error hashing password: %v", err)
	}
	if user.Password == "secret1" {
		t.Fatal("password must not be stored in plaintext")
	}

	if !user.CheckPassword("secret1") {
		t.Fatal("expected correct password to verify")
	}
	if user.CheckPassword("wrong") {
		t.Fatal("expected wrong password to fail")
	}
	if user.CheckPassword("") {
		t.Fatal("expected empty password to fail")
	}
}

func TestToResponse(t *testing.T) {
	user := &User{
		BaseModel: BaseModel{ID: 7},
		Name:      "Alice",
		Email:     "alice@lottery.com",
		RoleID:    RoleUserID,
		Role:      &Role{BaseModel: BaseModel{ID: RoleUserID}, Name: "user"},
	}

	resp := user.ToResponse()
	if resp.ID != 7 || resp.Name != "Alice" || resp.Email != "alice@lottery.com" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.RoleID != RoleUserID || resp.Role == nil || resp.Role.Name != "user" {
		t.Fatalf("unexpected role in response: %+v", resp)
	}
}
