package handlers

//go:generate mockgen -source=get_user.go -destination=get_user_mock_test.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/user-crud-service/internal/logger"
	"github.com/sbilibin2017/user-crud-service/internal/models"
)

// UserGetter defines the interface that the service must implement.
type UserGetter interface {
	GetUser(ctx context.Context, id int64) (*models.User, error)
}

// NewGetUserHandler returns an HTTP handler fetching a single user.
// @Summary Get a user
// @Description Returns the user with the given id.
// @Tags users
// @Produce json
// @Param id path int true "User id"
// @Success 200 {object} models.User "User"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /user/{id} [get]
func NewGetUserHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := userIDParam(r)
		if !ok {
			writeError(w, http.StatusNotFound, errMsgNotFound)
			return
		}

		user, err := svc.GetUser(r.Context(), id)
		if err != nil {
			if errors.Is(err, models.ErrUserNotFound) {
				writeError(w, http.StatusNotFound, errMsgNotFound)
				return
			}
			logger.Log.Errorw("internal server error", "id", id, "err", err)
			writeError(w, http.StatusInternalServerError, errMsgInternalServer)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}
