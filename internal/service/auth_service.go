package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mawid-sa/mawid/internal/session"
	"github.com/mawid-sa/mawid/internal/validate"
)

// ErrNotLoggedIn is returned when an operation needs a session and none
// exists.
var ErrNotLoggedIn = errors.New("لم يتم تسجيل الدخول")

// Display defaults until the profile endpoint exists on the backend.
const (
	defaultDisplayName = "محمد أحمد"
	defaultEmail       = "user@example.com"
	defaultPhone       = "+966500000000"
)

// AuthService issues and clears the local session. None of the backend
// endpoints covers authentication, so any credential pair that passes
// validation is accepted and the session is minted locally; the backend is
// the source of truth once it grows an auth endpoint.
type AuthService struct {
	store  session.Store
	logger *zap.Logger
}

func NewAuthService(store session.Store, logger *zap.Logger) *AuthService {
	return &AuthService{store: store, logger: logger}
}

// Login validates the credentials and opens a session. The patient id is a
// deterministic derivation from the national id, so the same national id
// always maps to the same patient.
func (s *AuthService) Login(ctx context.Context, nationalID, password string) (*session.Session, error) {
	if err := validate.Login(nationalID, password); err != nil {
		return nil, err
	}

	sess := &session.Session{
		Token:      uuid.NewString(),
		NationalID: nationalID,
		Name:       defaultDisplayName,
		PatientID:  session.DerivePatientID(nationalID),
	}

	if err := s.store.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	s.logger.Info("User logged in",
		zap.String("patient_id", sess.PatientID),
	)
	return sess, nil
}

// Signup validates the registration form and opens a session for the new
// account. The patient id carries the age suffix shown on the account number.
func (s *AuthService) Signup(ctx context.Context, form validate.SignupForm) (*session.Session, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	sess := &session.Session{
		Token:        uuid.NewString(),
		NationalID:   form.NationalID,
		Name:         form.FullName,
		PatientID:    session.DeriveSignupPatientID(form.NationalID, form.Age),
		RegisteredAt: nowFunc(),
	}

	if err := s.store.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	s.logger.Info("User registered",
		zap.String("patient_id", sess.PatientID),
		zap.Int("age", form.Age),
	)
	return sess, nil
}

// Logout clears the persisted session.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	s.logger.Info("User logged out")
	return nil
}

// Profile is the logged-in user's view of their own account.
type Profile struct {
	Name       string `json:"name"`
	NationalID string `json:"national_id"`
	PatientID  string `json:"patient_id"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
}

// Profile returns the current user's profile, or ErrNotLoggedIn.
func (s *AuthService) Profile(ctx context.Context) (*Profile, error) {
	sess, err := s.store.Load(ctx)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil, ErrNotLoggedIn
		}
		return nil, fmt.Errorf("load session: %w", err)
	}

	name := sess.Name
	if name == "" {
		name = defaultDisplayName
	}
	patientID := sess.PatientID
	if patientID == "" {
		patientID = session.DerivePatientID(sess.NationalID)
	}

	return &Profile{
		Name:       name,
		NationalID: sess.NationalID,
		PatientID:  patientID,
		Email:      defaultEmail,
		Phone:      defaultPhone,
	}, nil
}
