package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestHashAndCheckPassword(t *testing.T) {
	hashed, err := HashPassword("rahasia123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hashed == "rahasia123" {
		t.Fatal("password stored in plaintext")
	}
	if !CheckPassword("rahasia123", hashed) {
		t.Error("correct password rejected")
	}
	if CheckPassword("salah", hashed) {
		t.Error("wrong password accepted")
	}
}

func TestHashPasswordUsesPerRecordSalt(t *testing.T) {
	first, _ := HashPassword("rahasia123")
	second, _ := HashPassword("rahasia123")
	if first == second {
		t.Error("two hashes of the same password should differ")
	}
}

func TestUserJSONHidesPassword(t *testing.T) {
	u := User{Username: "admin", Password: "$2a$10$somethinghashed"}
	data, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("marshal user: %v", err)
	}
	if strings.Contains(string(data), "somethinghashed") || strings.Contains(string(data), "password") {
		t.Errorf("user json leaks password field: %s", data)
	}
}
