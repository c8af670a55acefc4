package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDerivePatientID(t *testing.T) {
	assert.Equal(t, "PAT567890", DerivePatientID("1234567890"))
	assert.Equal(t, "PAT567890", DerivePatientID(" 1234567890 "))
	assert.Equal(t, "PAT000222", DerivePatientID("1000000222"))

	// Same input, same output, every time.
	assert.Equal(t, DerivePatientID("1234567890"), DerivePatientID("1234567890"))
}

func TestDeriveSignupPatientID(t *testing.T) {
	assert.Equal(t, "PAT567890_25", DeriveSignupPatientID("1234567890", 25))
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	saved := &Session{
		Token:      "token-abc",
		NationalID: "1234567890",
		Name:       "محمد أحمد",
		PatientID:  "PAT567890",
	}
	require.NoError(t, store.Save(ctx, saved))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)

	// The store hands out copies, not its own state.
	loaded.PatientID = "PAT999999"
	again, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "PAT567890", again.PatientID)

	require.NoError(t, store.Clear(ctx))
	_, err = store.Load(ctx)
	assert.ErrorIs(t, err, ErrNotFound)
}
