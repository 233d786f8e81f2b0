package handlers

//go:generate mockgen -source=list_users.go -destination=list_users_mock_test.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/user-crud-service/internal/logger"
	"github.com/sbilibin2017/user-crud-service/internal/models"
)

// UserLister defines the interface that the service must implement.
type UserLister interface {
	ListUsers(ctx context.Context) ([]models.User, error)
}

// NewListUsersHandler returns an HTTP handler rendering all users as HTML.
// @Summary List users
// @Description Renders an HTML list of all users with a delete button per user.
// @Tags users
// @Produce html
// @Success 200 {string} string "HTML user list"
// @Failure 500 {string} string "Internal server error"
// @Router /users [get]
func NewListUsersHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.ListUsers(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			http.Error(w, errMsgInternalServer, http.StatusInternalServerError)
			return
		}

		writeHTML(w, usersTemplate, users)
	}
}
