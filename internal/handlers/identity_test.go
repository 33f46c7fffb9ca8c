package handlers_test

import (
	"net/http"
	"testing"
)

func TestGetUserName(t *testing.T) {
	h, r := newTestEnv(t)

	cookie := authCookie(t, h, "user-1", "Alice")

	rec := doRequest(t, r, "GET", "/api/courses/GetUserName", "", cookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body map[string]string
	decodeJSON(t, rec, &body)
	if body["userName"] != "Alice" {
		t.Fatalf("expected userName Alice, got %q", body["userName"])
	}
}

func TestGetUserNameUnauthenticated(t *testing.T) {
	_, r := newTestEnv(t)

	rec := doRequest(t, r, "GET", "/api/courses/GetUserName", "", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if msg := errorMessage(t, rec); msg != "User is not authenticated" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestHealth(t *testing.T) {
	_, r := newTestEnv(t)

	rec := doRequest(t, r, "GET", "/", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
