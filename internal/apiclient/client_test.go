package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mawid-sa/mawid/internal/model"
	"github.com/mawid-sa/mawid/internal/session"
)

// unreachableURL points at a port nothing listens on, so requests fail fast.
const unreachableURL = "http://127.0.0.1:1"

func newTestClient(baseURL string, store session.Store) *Client {
	client := New(baseURL, 2*time.Second, store, zap.NewNop())
	client.now = func() time.Time { return fixedNow }
	return client
}

func TestListCentersFromBackend(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/centers", r.URL.Path)
		assert.Equal(t, "ar-SA", r.Header.Get("Accept-Language"))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"centers": []model.Center{{CenterID: "201", Name: "مركز تجريبي", City: "الرياض"}},
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL, nil)
	centers, err := client.ListCenters(context.Background())
	require.NoError(t, err)
	assert.False(t, centers.Fallback)
	require.Len(t, centers.Data, 1)
	assert.Equal(t, "201", centers.Data[0].CenterID)
}

func TestListCentersDegradesWhenUnreachable(t *testing.T) {
	client := newTestClient(unreachableURL, nil)

	centers, err := client.ListCenters(context.Background())
	require.NoError(t, err, "reads never fail the caller on transport errors")
	assert.True(t, centers.Fallback)
	assert.Error(t, centers.Cause)
	require.Len(t, centers.Data, 5)
}

func TestListCentersCancelledContextIsAnError(t *testing.T) {
	client := newTestClient(unreachableURL, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.ListCenters(ctx)
	require.Error(t, err, "a superseded load must not overwrite state with fallback data")
}

func TestSearchCentersFiltersBySubstring(t *testing.T) {
	client := newTestClient(unreachableURL, nil)

	all, err := client.SearchCenters(context.Background(), "   ")
	require.NoError(t, err)
	assert.Len(t, all.Data, 5, "blank term returns the unfiltered list")

	byCity, err := client.SearchCenters(context.Background(), "جدة")
	require.NoError(t, err)
	require.Len(t, byCity.Data, 1)
	assert.Equal(t, "102", byCity.Data[0].CenterID)

	byID, err := client.SearchCenters(context.Background(), "103")
	require.NoError(t, err)
	require.Len(t, byID.Data, 1)
	assert.Equal(t, "الدمام", byID.Data[0].City)

	none, err := client.SearchCenters(context.Background(), "لا يوجد")
	require.NoError(t, err)
	assert.Empty(t, none.Data)
}

func TestListAvailableSlotsDegradesWithRequestedCenter(t *testing.T) {
	client := newTestClient(unreachableURL, nil)

	slots, err := client.ListAvailableSlots(context.Background(), "101")
	require.NoError(t, err)
	assert.True(t, slots.Fallback)
	require.Len(t, slots.Data.Slots, 10)
	for _, slot := range slots.Data.Slots {
		assert.Equal(t, "101", slot.CenterID)
	}
}

func TestPredictNoShowRiskDegrades(t *testing.T) {
	client := newTestClient(unreachableURL, nil)

	prediction, err := client.PredictNoShowRisk(context.Background(), "PAT567890", "APP_101_1_MORNING", "101")
	require.NoError(t, err)
	assert.True(t, prediction.Fallback)
	assert.Equal(t, "PAT567890", prediction.Data.PatientID)
	assert.Contains(t, fallbackProbabilities, prediction.Data.NoShowProbability)
}

func TestBookAppointmentSendsBearerToken(t *testing.T) {
	store := session.NewMemoryStore()
	require.NoError(t, store.Save(context.Background(), &session.Session{
		Token:     "token-abc",
		PatientID: "PAT567890",
	}))

	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")

		var req BookingRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "PAT567890", req.PatientID)
		assert.Equal(t, "APP_101_1_MORNING", req.AppointmentID)

		json.NewEncoder(w).Encode(model.BookingResult{Status: "success"})
	}))
	defer server.Close()

	client := newTestClient(server.URL, store)
	result, err := client.BookAppointment(context.Background(), BookingRequest{
		PatientID:     "PAT567890",
		AppointmentID: "APP_101_1_MORNING",
		PatientName:   "محمد أحمد",
		PhoneNumber:   "+966500000000",
	})
	require.NoError(t, err)
	assert.True(t, result.Succeeded())
	assert.Equal(t, "Bearer token-abc", gotAuth)
}

func TestBookAppointmentFailsClosed(t *testing.T) {
	client := newTestClient(unreachableURL, nil)

	_, err := client.BookAppointment(context.Background(), BookingRequest{
		PatientID:     "PAT567890",
		AppointmentID: "APP_101_1_MORNING",
	})
	require.Error(t, err, "writes must never be faked offline")
}

func TestCancelAppointmentPropagatesServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(server.URL, nil)
	_, err := client.CancelAppointment(context.Background(), "APP_101_1_MORNING", "PAT567890")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestCancelAppointmentCarriesAction(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "cancel", req["action"])
		json.NewEncoder(w).Encode(model.CancellationResult{Status: "success"})
	}))
	defer server.Close()

	client := newTestClient(server.URL, nil)
	result, err := client.CancelAppointment(context.Background(), "APP_101_1_MORNING", "PAT567890")
	require.NoError(t, err)
	assert.True(t, result.Succeeded())
}

func TestRescheduleAppointmentFailsClosed(t *testing.T) {
	client := newTestClient(unreachableURL, nil)

	_, err := client.RescheduleAppointment(context.Background(), "APP_OLD", "APP_NEW", "PAT567890")
	require.Error(t, err)
}

func TestListPatientAppointmentsDegrades(t *testing.T) {
	client := newTestClient(unreachableURL, nil)

	history, err := client.ListPatientAppointments(context.Background(), "PAT000111")
	require.NoError(t, err)
	assert.True(t, history.Fallback)
	require.Len(t, history.Data.Appointments, 3)
	for _, appt := range history.Data.Appointments {
		assert.Equal(t, "PAT000111", appt.PatientID)
	}
}

func TestConnectivityAgainstLiveBackend(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/health":
			json.NewEncoder(w).Encode(HealthReport{Status: "healthy", Database: "connected"})
		case "/centers":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"centers": []model.Center{{CenterID: "101"}, {CenterID: "102"}},
			})
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	client := newTestClient(server.URL, nil)
	status := client.Connectivity(context.Background())

	assert.True(t, status.Connected)
	assert.Equal(t, "healthy", status.HealthStatus)
	assert.Equal(t, "connected", status.Database)
	assert.Equal(t, 2, status.CentersCount)
	assert.Equal(t, fixedNow, status.Timestamp)
	assert.Empty(t, status.Error)
}

func TestConnectivityWhenUnreachableMeansDemoMode(t *testing.T) {
	client := newTestClient(unreachableURL, nil)
	status := client.Connectivity(context.Background())

	assert.False(t, status.Connected, "degraded center read means demo mode")
	assert.Equal(t, "unhealthy", status.HealthStatus)
	assert.Equal(t, "disconnected", status.Database)
	assert.NotEmpty(t, status.Error)
}
