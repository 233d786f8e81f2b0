package handlers

//go:generate mockgen -source=update_user.go -destination=update_user_mock_test.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/user-crud-service/internal/logger"
	"github.com/sbilibin2017/user-crud-service/internal/models"
)

// UserUpdater defines the interface that the service must implement.
type UserUpdater interface {
	UpdateUser(ctx context.Context, id int64, username, email *string) error
}

// UpdateUserRequest represents the JSON body for a partial user update.
// Omitted fields are left unchanged.
// swagger:model UpdateUserRequest
type UpdateUserRequest struct {
	// New username
	// default: alicia
	Username *string `json:"username,omitempty"`

	// New email
	// default: b@x.com
	Email *string `json:"email,omitempty"`
}

// NewUpdateUserHandler returns an HTTP handler for partial user updates.
// @Summary Update a user
// @Description Changes the supplied fields of the user with the given id.
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User id"
// @Param updateUserRequest body handlers.UpdateUserRequest true "Fields to change"
// @Success 200 {object} handlers.MessageResponse "User updated"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 409 {object} handlers.ErrorResponse "Username or email already exists"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /update_user/{id} [put]
func NewUpdateUserHandler(svc UserUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := userIDParam(r)
		if !ok {
			writeError(w, http.StatusNotFound, errMsgNotFound)
			return
		}

		var req UpdateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Warnw("invalid update user body", "id", id, "err", err)
			writeError(w, http.StatusBadRequest, errMsgInvalidBody)
			return
		}

		err := svc.UpdateUser(r.Context(), id, req.Username, req.Email)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrUserNotFound):
				writeError(w, http.StatusNotFound, errMsgNotFound)
			case errors.Is(err, models.ErrUserAlreadyExists):
				writeError(w, http.StatusConflict, errMsgAlreadyExists)
			default:
				logger.Log.Errorw("internal server error", "id", id, "err", err)
				writeError(w, http.StatusInternalServerError, errMsgInternalServer)
			}
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{
			Message: "User updated successfully",
		})
	}
}
