// Package http exposes the password-change action as a plain request
// handler. It is a thin shell: it decodes the request, verifies the
// current password, then delegates to the same command handler the other
// entry points use.
package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"patternbook/internal/core/application/usecases/commands"
	"patternbook/internal/core/domain/model/kernel"
	"patternbook/internal/core/ports"
	"patternbook/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

// ChangePasswordRequest is the JSON body for a password change.
type ChangePasswordRequest struct {
	UserID          string `json:"user_id"`
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// ErrorResponse is the JSON body returned on any failure.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// PasswordServer handles HTTP requests for the password-change action.
// It verifies the caller knows the current password before invoking the
// command handler; the business logic itself stays in the handler.
type PasswordServer struct {
	updatePasswordHandler commands.UpdatePasswordCommandHandler
	users                 ports.UserRepository
	logger                *slog.Logger
}

// NewPasswordServer creates an HTTP adapter around the password command
// handler. The repository is needed only to fetch the stored hash for the
// current-password check. A nil logger falls back to slog.Default.
func NewPasswordServer(
	updatePasswordHandler commands.UpdatePasswordCommandHandler,
	users ports.UserRepository,
	logger *slog.Logger,
) *PasswordServer {
	if logger == nil {
		logger = slog.Default()
	}

	return &PasswordServer{
		updatePasswordHandler: updatePasswordHandler,
		users:                 users,
		logger:                logger,
	}
}

// ChangePassword handles POST requests to change a user's password.
// A wrong current_password is rejected with 422 before the command
// handler runs; an unknown user yields 404.
func (s *PasswordServer) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
		return
	}

	userID, err := kernel.UUIDFromString(req.UserID)
	if err != nil {
		writeError(w, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid user ID: " + err.Error(),
			Field:   "user_id",
		})
		return
	}

	u, err := s.users.Get(r.Context(), userID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			writeError(w, ErrorResponse{
				Code:    http.StatusNotFound,
				Message: "User not found",
			})
			return
		}

		writeError(w, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve user",
		})
		return
	}

	if bcrypt.CompareHashAndPassword(u.PasswordHash(), []byte(req.CurrentPassword)) != nil {
		s.logger.Warn("password change rejected", "user_id", req.UserID, "field", "current_password")
		writeError(w, ErrorResponse{
			Code:    http.StatusUnprocessableEntity,
			Message: "Current password does not match",
			Field:   "current_password",
		})
		return
	}

	cmd, err := commands.NewUpdatePasswordCommand(userID, req.NewPassword)
	if err != nil {
		writeError(w, ErrorResponse{
			Code:    http.StatusUnprocessableEntity,
			Message: "Invalid password change: " + err.Error(),
			Field:   "new_password",
		})
		return
	}

	if handleErr := s.updatePasswordHandler.Handle(r.Context(), cmd); handleErr != nil {
		s.logger.Error("password change failed", "user_id", req.UserID, "error", handleErr)
		writeError(w, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to update password",
		})
		return
	}

	s.logger.Info("password changed", "user_id", req.UserID)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "password updated"})
}

func writeError(w http.ResponseWriter, resp ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.Code)
	_ = json.NewEncoder(w).Encode(resp)
}
