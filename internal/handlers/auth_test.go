package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"heating_leads/internal/apperr"
	"heating_leads/internal/repository"
	"heating_leads/internal/service"

	"github.com/gin-gonic/gin"
)

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func signUpRouter(auth *mockAuth) *gin.Engine {
	return newTestRouterWith(&service.Service{Authorization: auth}, Options{AllowSignUp: true})
}

func TestSignUp_NotRoutedByDefault(t *testing.T) {
	auth := &mockAuth{signUpID: 42}
	r := newTestRouter(&service.Service{Authorization: auth})

	w := postJSON(r, "/auth/sign-up", `{"username":"u","password":"p"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("sign-up should be closed, got %d", w.Code)
	}
	if auth.lastSignUpUsername != "" {
		t.Fatalf("SignUp must not be reached")
	}
}

func TestSignUp_WhenAllowed(t *testing.T) {
	auth := &mockAuth{signUpID: 42}
	w := postJSON(signUpRouter(auth), "/auth/sign-up", `{"username":"u","password":"p"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("sign-up status=%d, body=%s", w.Code, w.Body.String())
	}
	var m map[string]int
	if err := json.Unmarshal(w.Body.Bytes(), &m); err != nil || m["id"] != 42 {
		t.Fatalf("expected id 42, got %s", w.Body.String())
	}
	if auth.lastSignUpUsername != "u" || auth.lastSignUpPassword != "p" {
		t.Fatalf("SignUp got %q/%q", auth.lastSignUpUsername, auth.lastSignUpPassword)
	}
}

func TestSignUp_ErrorStatuses(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		leak   string
	}{
		{"taken", apperr.Conflict("operator already exists", repository.ErrOperatorExists), http.StatusConflict, ""},
		{"blank", apperr.Validation("password is empty"), http.StatusBadRequest, ""},
		{"storage", apperr.Internal("could not create operator", errors.New("SQL logic error: no such table")), http.StatusInternalServerError, "SQL"},
		{"untyped", errors.New("constraint failed: sqlite driver text"), http.StatusInternalServerError, "sqlite"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := postJSON(signUpRouter(&mockAuth{signUpErr: tc.err}), "/auth/sign-up", `{"username":"u","password":"p"}`)
			if w.Code != tc.status {
				t.Fatalf("want %d, got %d: %s", tc.status, w.Code, w.Body.String())
			}
			if tc.leak != "" && strings.Contains(w.Body.String(), tc.leak) {
				t.Fatalf("storage error text leaked: %s", w.Body.String())
			}
		})
	}
}

func TestSignIn(t *testing.T) {
	auth := &mockAuth{genTokenToken: "tok123"}
	r := newTestRouter(&service.Service{Authorization: auth})

	w := postJSON(r, "/auth/sign-in", `{"username":"u","password":"p"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("sign-in status=%d, body=%s", w.Code, w.Body.String())
	}
	var m map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	if m["token"] != "tok123" {
		t.Fatalf("expected token tok123, got %v", m["token"])
	}

	if w := postJSON(r, "/auth/sign-in", `{"username":1}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad body, got %d", w.Code)
	}

	auth.genTokenErr = service.ErrInvalidPassword
	if w := postJSON(r, "/auth/sign-in", `{"username":"u","password":"bad"}`); w.Code != http.StatusUnauthorized {
		t.Fatalf("wrong password: expected 401, got %d", w.Code)
	}
	if auth.lastGenPassword != "bad" {
		t.Fatalf("GenerateToken got password %q", auth.lastGenPassword)
	}

	auth.genTokenErr = service.ErrNoSigningKey
	if w := postJSON(r, "/auth/sign-in", `{"username":"u","password":"p"}`); w.Code != http.StatusInternalServerError {
		t.Fatalf("unconfigured signing key: expected 500, got %d", w.Code)
	}
}
