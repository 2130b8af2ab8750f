package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/Magupe09/auth-prueba/internal/app"
	"github.com/Magupe09/auth-prueba/internal/domain"
)

// UserRegistrar is the minimal interface needed to sign up a user.
type UserRegistrar interface {
	Register(ctx context.Context, in app.RegisterInput) (domain.User, error)
}

// UserAuthenticator is the minimal interface needed to log a user in.
type UserAuthenticator interface {
	Login(ctx context.Context, email, password string) (app.LoginResult, error)
}

// HandleSignup returns an HTTP handler for user registration.
func HandleSignup(svc UserRegistrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		var req signupRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		user, err := svc.Register(r.Context(), app.RegisterInput{
			Name:     req.Name,
			Email:    req.Email,
			Password: req.Password,
		})
		if err != nil {
			switch err {
			case domain.ErrNameRequired:
				writeError(w, http.StatusBadRequest, codeNameRequired, err.Error())
			case domain.ErrInvalidEmail:
				writeError(w, http.StatusBadRequest, codeInvalidEmail, err.Error())
			case domain.ErrPasswordTooShort:
				writeError(w, http.StatusBadRequest, codePasswordTooShort, err.Error())
			case domain.ErrEmailTaken:
				writeError(w, http.StatusConflict, codeEmailTaken, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(signupResponse{
			Message: "user registered",
			User: userResponse{
				UserID:    user.ID,
				Name:      user.Name,
				Email:     user.Email,
				CreatedAt: user.CreatedAt,
			},
		})
	}
}

// HandleLogin returns an HTTP handler for credential login.
func HandleLogin(svc UserAuthenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		var req loginRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		res, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			if err == domain.ErrInvalidCredentials {
				writeError(w, http.StatusUnauthorized, codeInvalidCredentials, err.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(loginResponse{
			Message: "login successful",
			UserID:  res.UserID,
			Token:   res.Token,
		})
	}
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupResponse struct {
	Message string       `json:"message"`
	User    userResponse `json:"user"`
}

type userResponse struct {
	UserID    int64     `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"user_id"`
	Token   string `json:"token"`
}
