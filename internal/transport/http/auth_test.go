package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Magupe09/auth-prueba/internal/app"
	"github.com/Magupe09/auth-prueba/internal/domain"
)

func TestHandleSignup(t *testing.T) {
	t.Parallel()

	t.Run("registers user", func(t *testing.T) {
		svc := &fakeRegistrar{user: domain.User{ID: 1, Name: "Mauricio", Email: "mauricio@email.com"}}
		handler := HandleSignup(svc)

		req := httptest.NewRequest(http.MethodPost, "/signup",
			strings.NewReader(`{"name":"Mauricio","email":"mauricio@email.com","password":"miClave123"}`))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected status 201, got %d", rec.Code)
		}
		var resp signupResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if resp.User.UserID != 1 || resp.User.Email != "mauricio@email.com" {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})

	t.Run("duplicate email returns 409", func(t *testing.T) {
		handler := HandleSignup(&fakeRegistrar{err: domain.ErrEmailTaken})

		req := httptest.NewRequest(http.MethodPost, "/signup",
			strings.NewReader(`{"name":"A","email":"a@b.com","password":"secret1"}`))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected status 409, got %d", rec.Code)
		}
	})

	t.Run("validation failures return 400", func(t *testing.T) {
		for _, err := range []error{domain.ErrNameRequired, domain.ErrInvalidEmail, domain.ErrPasswordTooShort} {
			handler := HandleSignup(&fakeRegistrar{err: err})

			req := httptest.NewRequest(http.MethodPost, "/signup",
				strings.NewReader(`{"name":"A","email":"a@b.com","password":"x"}`))
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("%v: expected status 400, got %d", err, rec.Code)
			}
		}
	})

	t.Run("malformed body returns 400", func(t *testing.T) {
		handler := HandleSignup(&fakeRegistrar{})

		req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(`{`))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", rec.Code)
		}
	})
}

func TestHandleLogin(t *testing.T) {
	t.Parallel()

	t.Run("valid credentials return token", func(t *testing.T) {
		svc := &fakeAuthenticator{result: app.LoginResult{UserID: 7, Token: "tok"}}
		handler := HandleLogin(svc)

		req := httptest.NewRequest(http.MethodPost, "/login",
			strings.NewReader(`{"email":"mauricio@email.com","password":"miClave123"}`))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}
		var resp loginResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if resp.UserID != 7 || resp.Token != "tok" {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})

	t.Run("bad credentials return 401", func(t *testing.T) {
		handler := HandleLogin(&fakeAuthenticator{err: domain.ErrInvalidCredentials})

		req := httptest.NewRequest(http.MethodPost, "/login",
			strings.NewReader(`{"email":"mauricio@email.com","password":"otraClave321"}`))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected status 401, got %d", rec.Code)
		}
	})

	t.Run("GET is not allowed", func(t *testing.T) {
		handler := HandleLogin(&fakeAuthenticator{})

		req := httptest.NewRequest(http.MethodGet, "/login", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusMethodNotAllowed {
			t.Fatalf("expected status 405, got %d", rec.Code)
		}
	})
}

type fakeRegistrar struct {
	user domain.User
	err  error
}

func (f *fakeRegistrar) Register(_ context.Context, _ app.RegisterInput) (domain.User, error) {
	if f.err != nil {
		return domain.User{}, f.err
	}
	return f.user, nil
}

type fakeAuthenticator struct {
	result app.LoginResult
	err    error
}

func (f *fakeAuthenticator) Login(_ context.Context, _, _ string) (app.LoginResult, error) {
	if f.err != nil {
		return app.LoginResult{}, f.err
	}
	return f.result, nil
}
