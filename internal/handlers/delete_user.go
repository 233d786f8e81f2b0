package handlers

//go:generate mockgen -source=delete_user.go -destination=delete_user_mock_test.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/user-crud-service/internal/logger"
	"github.com/sbilibin2017/user-crud-service/internal/models"
)

// UserDeleter defines the interface that the service must implement.
type UserDeleter interface {
	DeleteUser(ctx context.Context, id int64) error
}

// NewDeleteUserHandler returns an HTTP handler deleting a user and
// redirecting back to the user list.
// @Summary Delete a user
// @Description Deletes the user with the given id and redirects to /users.
// @Tags users
// @Produce json
// @Param id path int true "User id"
// @Success 302 {string} string "Redirect to /users"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /delete_user/{id} [post]
func NewDeleteUserHandler(svc UserDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := userIDParam(r)
		if !ok {
			writeError(w, http.StatusNotFound, errMsgNotFound)
			return
		}

		if err := svc.DeleteUser(r.Context(), id); err != nil {
			if errors.Is(err, models.ErrUserNotFound) {
				writeError(w, http.StatusNotFound, errMsgNotFound)
				return
			}
			logger.Log.Errorw("internal server error", "id", id, "err", err)
			writeError(w, http.StatusInternalServerError, errMsgInternalServer)
			return
		}

		http.Redirect(w, r, "/users", http.StatusFound)
	}
}
