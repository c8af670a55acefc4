package session

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

// Field names kept compatible with the keys the mobile client stored.
const (
	fieldToken        = "userToken"
	fieldNationalID   = "userNationalId"
	fieldName         = "userName"
	fieldPatientID    = "patientId"
	fieldHasUpcoming  = "hasUpcomingAppointment"
	fieldRegisteredAt = "userRegisteredAt"
)

// RedisStore persists the session in a Redis hash.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore connects to Redis and verifies the connection with a short
// ping before handing the store out.
func NewRedisStore(addr, password string, db int) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return &RedisStore{client: client, key: "mawid:session"}, nil
}

func (s *RedisStore) Load(ctx context.Context) (*Session, error) {
	fields, err := s.client.HGetAll(ctx, s.key).Result()
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if len(fields) == 0 || fields[fieldToken] == "" {
		return nil, ErrNotFound
	}

	sess := &Session{
		Token:      fields[fieldToken],
		NationalID: fields[fieldNationalID],
		Name:       fields[fieldName],
		PatientID:  fields[fieldPatientID],
	}
	sess.HasUpcomingAppointment, _ = strconv.ParseBool(fields[fieldHasUpcoming])
	if raw := fields[fieldRegisteredAt]; raw != "" {
		sess.RegisteredAt, _ = time.Parse(time.RFC3339, raw)
	}
	return sess, nil
}

func (s *RedisStore) Save(ctx context.Context, sess *Session) error {
	values := map[string]interface{}{
		fieldToken:       sess.Token,
		fieldNationalID:  sess.NationalID,
		fieldName:        sess.Name,
		fieldPatientID:   sess.PatientID,
		fieldHasUpcoming: strconv.FormatBool(sess.HasUpcomingAppointment),
	}
	if !sess.RegisteredAt.IsZero() {
		values[fieldRegisteredAt] = sess.RegisteredAt.Format(time.RFC3339)
	}

	if err := s.client.HSet(ctx, s.key, values).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Close releases the underlying Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
