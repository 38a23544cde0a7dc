package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avdeev-dev/gw-audio-transcriber/internal/logger"
	"github.com/avdeev-dev/gw-audio-transcriber/internal/models"
	"github.com/avdeev-dev/gw-audio-transcriber/internal/services"
)

// Signuper defines the interface that the signup service must implement.
type Signuper interface {
	Signup(ctx context.Context, email, password, name string) (*models.UserDB, error)
}

// SignupRequest represents the JSON body for user signup
// swagger:model SignupRequest
type SignupRequest struct {
	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`

	// Name
	// required: true
	// default: John Doe
	Name string `json:"name"`
}

// SignupResponse represents a successful signup response
// swagger:model SignupResponse
type SignupResponse struct {
	// Success message
	// default: User created successfully
	Message string `json:"message"`

	// Created user record
	User *models.UserDB `json:"user"`
}

// SignupErrorResponse represents an error response for signup
// swagger:model SignupErrorResponse
type SignupErrorResponse struct {
	// Error message
	// default: User already exists
	Error string `json:"error"`
}

// NewSignupHandler returns an HTTP handler for user signup.
// @Summary Sign up a new user
// @Description Creates a new user account with a unique email. Password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param signupRequest body handlers.SignupRequest true "User signup request"
// @Success 200 {object} handlers.SignupResponse "User successfully created"
// @Failure 400 {object} handlers.SignupErrorResponse "Email already registered / invalid request"
// @Failure 500 {object} handlers.SignupErrorResponse "Store or hashing failure"
// @Router /signup [post]
func NewSignupHandler(svc Signuper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignupRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SignupErrorResponse{
				Error: "All fields are required",
			})
			return
		}

		if req.Email == "" || req.Password == "" || req.Name == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SignupErrorResponse{
				Error: "All fields are required",
			})
			return
		}

		user, err := svc.Signup(r.Context(), req.Email, req.Password, req.Name)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserAlreadyExists):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(SignupErrorResponse{
					Error: "User already exists",
				})
			default:
				logger.Log.Errorw("signup failed", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(SignupErrorResponse{
					Error: err.Error(),
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SignupResponse{
			Message: "User created successfully",
			User:    user,
		})
	}
}
