package session

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// ErrNotFound is returned by Store.Load when no session is persisted.
var ErrNotFound = errors.New("session not found")

// Session is the logged-in patient context. It replaces the scattered
// per-field key-value reads of the old client: the store hands out the whole
// object and callers never touch individual keys.
type Session struct {
	Token                  string    `json:"token"`
	NationalID             string    `json:"national_id"`
	Name                   string    `json:"name"`
	PatientID              string    `json:"patient_id"`
	HasUpcomingAppointment bool      `json:"has_upcoming_appointment"`
	RegisteredAt           time.Time `json:"registered_at"`
}

// DerivePatientID derives the patient identifier from a national ID.
// The same national ID must always map to the same patient, so login,
// signup and the offline fallback all go through here.
func DerivePatientID(nationalID string) string {
	id := strings.TrimSpace(nationalID)
	if len(id) > 6 {
		id = id[len(id)-6:]
	}
	return "PAT" + id
}

// DeriveSignupPatientID is the signup variant: the age is appended so that
// the account number shown after registration carries it.
func DeriveSignupPatientID(nationalID string, age int) string {
	return DerivePatientID(nationalID) + "_" + strconv.Itoa(age)
}
