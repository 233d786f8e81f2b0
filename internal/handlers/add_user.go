package handlers

//go:generate mockgen -source=add_user.go -destination=add_user_mock_test.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/user-crud-service/internal/logger"
	"github.com/sbilibin2017/user-crud-service/internal/models"
)

// UserAdder defines the interface that the service must implement.
type UserAdder interface {
	AddUser(ctx context.Context, username, email string) (int64, error)
}

// AddUserRequest represents the JSON body for user creation
// swagger:model AddUserRequest
type AddUserRequest struct {
	// Username
	// required: true
	// default: alice
	Username string `json:"username"`

	// Email
	// required: true
	// default: a@x.com
	Email string `json:"email"`
}

// AddUserResponse represents a successful creation response
// swagger:model AddUserResponse
type AddUserResponse struct {
	// Success message
	// default: User added successfully
	Message string `json:"message"`

	// Id of the new user
	// default: 1
	ID int64 `json:"id"`
}

// NewAddUserHandler returns an HTTP handler for user creation.
// @Summary Add a user
// @Description Creates a new user. Username and email are required and must be unique.
// @Tags users
// @Accept json
// @Produce json
// @Param addUserRequest body handlers.AddUserRequest true "User to create"
// @Success 201 {object} handlers.AddUserResponse "User created"
// @Failure 400 {object} handlers.ErrorResponse "Missing username or email / invalid request"
// @Failure 409 {object} handlers.ErrorResponse "Username or email already exists"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /add_user [post]
func NewAddUserHandler(svc UserAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AddUserRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Warnw("invalid add user body", "err", err)
			writeError(w, http.StatusBadRequest, errMsgInvalidBody)
			return
		}

		id, err := svc.AddUser(r.Context(), req.Username, req.Email)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrMissingFields):
				writeError(w, http.StatusBadRequest, errMsgMissingFields)
			case errors.Is(err, models.ErrUserAlreadyExists):
				writeError(w, http.StatusConflict, errMsgAlreadyExists)
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, errMsgInternalServer)
			}
			return
		}

		writeJSON(w, http.StatusCreated, AddUserResponse{
			Message: "User added successfully",
			ID:      id,
		})
	}
}
