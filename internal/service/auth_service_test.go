package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mawid-sa/mawid/internal/session"
	"github.com/mawid-sa/mawid/internal/validate"
)

func TestLoginDerivesPatientID(t *testing.T) {
	store := session.NewMemoryStore()
	auth := NewAuthService(store, zap.NewNop())

	sess, err := auth.Login(context.Background(), "1234567890", "123456")
	require.NoError(t, err)
	assert.Equal(t, "PAT567890", sess.PatientID)
	assert.NotEmpty(t, sess.Token)
	assert.Equal(t, "محمد أحمد", sess.Name)

	persisted, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, sess.PatientID, persisted.PatientID)
	assert.Equal(t, sess.Token, persisted.Token)
}

func TestLoginSamePatientIDEveryTime(t *testing.T) {
	auth := NewAuthService(session.NewMemoryStore(), zap.NewNop())

	first, err := auth.Login(context.Background(), "1234567890", "123456")
	require.NoError(t, err)
	second, err := auth.Login(context.Background(), "1234567890", "another-password")
	require.NoError(t, err)

	assert.Equal(t, first.PatientID, second.PatientID)
}

func TestLoginRejectsBadInputBeforeAnyCall(t *testing.T) {
	auth := NewAuthService(session.NewMemoryStore(), zap.NewNop())

	_, err := auth.Login(context.Background(), "12345", "123456")
	assert.ErrorIs(t, err, validate.ErrNationalIDLength)

	_, err = auth.Login(context.Background(), "1234567890", "123")
	assert.ErrorIs(t, err, validate.ErrPasswordTooShort)

	_, err = auth.Login(context.Background(), "", "123456")
	assert.ErrorIs(t, err, validate.ErrNationalIDRequired)
}

func TestSignupAppendsAgeSuffix(t *testing.T) {
	fixed := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	nowFunc = func() time.Time { return fixed }
	defer func() { nowFunc = time.Now }()

	store := session.NewMemoryStore()
	auth := NewAuthService(store, zap.NewNop())

	sess, err := auth.Signup(context.Background(), validate.SignupForm{
		NationalID:      "1234567890",
		FullName:        "محمد أحمد السالم",
		Age:             25,
		Password:        "123456",
		ConfirmPassword: "123456",
	})
	require.NoError(t, err)
	assert.Equal(t, "PAT567890_25", sess.PatientID)
	assert.Equal(t, "محمد أحمد السالم", sess.Name)
	assert.Equal(t, fixed, sess.RegisteredAt)
}

func TestSignupValidatesForm(t *testing.T) {
	auth := NewAuthService(session.NewMemoryStore(), zap.NewNop())

	_, err := auth.Signup(context.Background(), validate.SignupForm{
		NationalID:      "1234567890",
		FullName:        "محمد أحمد السالم",
		Age:             17,
		Password:        "123456",
		ConfirmPassword: "123456",
	})
	assert.ErrorIs(t, err, validate.ErrAgeTooYoung)

	_, err = auth.Signup(context.Background(), validate.SignupForm{
		NationalID:      "1234567890",
		FullName:        "محمد أحمد السالم",
		Age:             25,
		Password:        "123456",
		ConfirmPassword: "654321",
	})
	assert.ErrorIs(t, err, validate.ErrPasswordMismatch)
}

func TestLogoutClearsSession(t *testing.T) {
	store := session.NewMemoryStore()
	auth := NewAuthService(store, zap.NewNop())

	_, err := auth.Login(context.Background(), "1234567890", "123456")
	require.NoError(t, err)

	require.NoError(t, auth.Logout(context.Background()))

	_, err = store.Load(context.Background())
	assert.ErrorIs(t, err, session.ErrNotFound)

	_, err = auth.Profile(context.Background())
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestProfileAfterLogin(t *testing.T) {
	auth := NewAuthService(session.NewMemoryStore(), zap.NewNop())

	_, err := auth.Login(context.Background(), "1234567890", "123456")
	require.NoError(t, err)

	profile, err := auth.Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "PAT567890", profile.PatientID)
	assert.Equal(t, "1234567890", profile.NationalID)
	assert.NotEmpty(t, profile.Email)
	assert.NotEmpty(t, profile.Phone)
}
