package services

//go:generate mockgen -source=user.go -destination=user_mock_test.go -package=services

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/user-crud-service/internal/logger"
	"github.com/sbilibin2017/user-crud-service/internal/middlewares"
	"github.com/sbilibin2017/user-crud-service/internal/models"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, id int64) (*models.User, error) // Returns models.ErrUserNotFound when absent
	List(ctx context.Context) ([]models.User, error)             // Returns all users ordered by id
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Create(ctx context.Context, username, email string) (int64, error)   // Returns the new user id
	Update(ctx context.Context, id int64, username, email *string) error // Nil fields are left unchanged
	Delete(ctx context.Context, id int64) error                          // Returns models.ErrUserNotFound when absent
}

// UserCache caches users by id. Get returns nil, nil on a miss.
type UserCache interface {
	Get(ctx context.Context, id int64) (*models.User, error)
	Set(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id int64) error
}

// EventWriter defines a Kafka writer abstraction.
type EventWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// UserService validates input and runs one storage operation per call.
// cache and events are optional and may be nil.
type UserService struct {
	reader UserReader
	writer UserWriter
	cache  UserCache
	events EventWriter
}

// NewUserService creates a new UserService.
func NewUserService(reader UserReader, writer UserWriter, cache UserCache, events EventWriter) *UserService {
	return &UserService{
		reader: reader,
		writer: writer,
		cache:  cache,
		events: events,
	}
}

// AddUser creates a user and returns its id.
func (s *UserService) AddUser(ctx context.Context, username, email string) (int64, error) {
	if username == "" || email == "" {
		requestLog(ctx).Warnw("missing required fields", "username", username, "email", email)
		return 0, models.ErrMissingFields
	}

	id, err := s.writer.Create(ctx, username, email)
	if err != nil {
		requestLog(ctx).Errorw("failed to create user", "username", username, "email", email, "err", err)
		return 0, err
	}

	s.publish(ctx, models.UserEvent{
		Type:     models.UserCreated,
		UserID:   id,
		Username: username,
		Email:    email,
	})

	return id, nil
}

// ListUsers returns every stored user.
func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.reader.List(ctx)
	if err != nil {
		requestLog(ctx).Errorw("failed to list users", "err", err)
		return nil, err
	}
	return users, nil
}

// GetUser returns a user by id, consulting the cache first when configured.
func (s *UserService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	if s.cache != nil {
		user, err := s.cache.Get(ctx, id)
		if err != nil {
			requestLog(ctx).Warnw("cache read failed, falling back to database", "id", id, "err", err)
		} else if user != nil {
			return user, nil
		}
	}

	user, err := s.reader.GetByID(ctx, id)
	if err != nil {
		requestLog(ctx).Errorw("failed to get user", "id", id, "err", err)
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, user); err != nil {
			requestLog(ctx).Warnw("failed to cache user", "id", id, "err", err)
		}
	}

	return user, nil
}

// UpdateUser changes the supplied fields of a user. Nil or empty fields are
// left unchanged.
func (s *UserService) UpdateUser(ctx context.Context, id int64, username, email *string) error {
	username, email = nonEmpty(username), nonEmpty(email)

	if err := s.writer.Update(ctx, id, username, email); err != nil {
		requestLog(ctx).Errorw("failed to update user", "id", id, "err", err)
		return err
	}

	s.evict(ctx, id)

	event := models.UserEvent{Type: models.UserUpdated, UserID: id}
	if username != nil {
		event.Username = *username
	}
	if email != nil {
		event.Email = *email
	}
	s.publish(ctx, event)

	return nil
}

// DeleteUser removes a user by id.
func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	if err := s.writer.Delete(ctx, id); err != nil {
		requestLog(ctx).Errorw("failed to delete user", "id", id, "err", err)
		return err
	}

	s.evict(ctx, id)
	s.publish(ctx, models.UserEvent{Type: models.UserDeleted, UserID: id})

	return nil
}

func (s *UserService) evict(ctx context.Context, id int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, id); err != nil {
		requestLog(ctx).Warnw("failed to evict cached user", "id", id, "err", err)
	}
}

// publish sends a lifecycle event to Kafka. Failures are logged only.
func (s *UserService) publish(ctx context.Context, event models.UserEvent) {
	if s.events == nil {
		return
	}

	event.EventID = uuid.NewString()
	event.Timestamp = time.Now().Unix()

	data, err := json.Marshal(event)
	if err != nil {
		requestLog(ctx).Errorw("failed to marshal user event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(event.UserID, 10)),
		Value: data,
	}

	if err := s.events.WriteMessages(ctx, msg); err != nil {
		requestLog(ctx).Errorw("failed to publish user event", "event_id", event.EventID, "type", event.Type, "error", err)
		return
	}

	requestLog(ctx).Infow("user event published", "event_id", event.EventID, "type", event.Type, "user_id", event.UserID)
}

// requestLog returns the global logger tagged with the request id from ctx.
func requestLog(ctx context.Context) *zap.SugaredLogger {
	if id := middlewares.RequestIDFromContext(ctx); id != "" {
		return logger.Log.With("request_id", id)
	}
	return logger.Log
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
