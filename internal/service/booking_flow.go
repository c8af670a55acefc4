package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/mawid-sa/mawid/internal/apiclient"
	"github.com/mawid-sa/mawid/internal/format"
	"github.com/mawid-sa/mawid/internal/model"
	"github.com/mawid-sa/mawid/internal/session"
)

// FlowState is the state of a single booking attempt.
type FlowState string

const (
	StateSlotSelected            FlowState = "slot_selected"
	StateRiskAssessed            FlowState = "risk_assessed"
	StateBooked                  FlowState = "booked"
	StateConfirmed               FlowState = "confirmed"
	StateCancellationRecommended FlowState = "cancellation_recommended"
	StateCancelled               FlowState = "cancelled"
)

// BookingAPI is the slice of the API client the flow needs.
type BookingAPI interface {
	PredictNoShowRisk(ctx context.Context, patientID, appointmentID, centerID string) (apiclient.Degraded[model.RiskPrediction], error)
	BookAppointment(ctx context.Context, req apiclient.BookingRequest) (*model.BookingResult, error)
	CancelAppointment(ctx context.Context, appointmentID, patientID string) (*model.CancellationResult, error)
	ListPatientAppointments(ctx context.Context, patientID string) (apiclient.Degraded[model.PatientAppointments], error)
}

// Summary is what the confirmation view shows for a held slot.
type Summary struct {
	Date        string
	Time        string
	Center      string
	WaitMinutes int
}

// Attempt tracks one pass through the booking flow.
type Attempt struct {
	State              FlowState
	PatientID          string
	Slot               model.Slot
	Prediction         model.RiskPrediction
	PredictionDegraded bool
	Booking            *model.BookingResult
	Summary            Summary

	// Appointments is the refreshed history after an accepted cancellation.
	Appointments *model.PatientAppointments
}

// BookingFlow drives the predict → book → branch sequence for one slot and
// the follow-up confirm/cancel decision.
type BookingFlow struct {
	api    BookingAPI
	store  session.Store
	logger *zap.Logger
}

func NewBookingFlow(api BookingAPI, store session.Store, logger *zap.Logger) *BookingFlow {
	return &BookingFlow{api: api, store: store, logger: logger}
}

// Book runs a booking attempt for the selected slot. The slot is always held
// (booked) before the user can be offered the cancellation branch, so two
// users are never deciding over the same free slot.
func (f *BookingFlow) Book(ctx context.Context, slot model.Slot) (*Attempt, error) {
	sess, err := f.store.Load(ctx)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil, ErrNotLoggedIn
		}
		return nil, fmt.Errorf("load session: %w", err)
	}

	attempt := &Attempt{
		State:     StateSlotSelected,
		PatientID: sess.PatientID,
		Slot:      slot,
	}

	// Risk first. Prediction failure is never fatal to the booking: with no
	// signal we treat the attempt as low risk and keep going.
	prediction, err := f.api.PredictNoShowRisk(ctx, sess.PatientID, slot.AppointmentID, slot.CenterID)
	if err != nil {
		f.logger.Warn("Risk prediction unavailable, proceeding as low risk",
			zap.String("appointment_id", slot.AppointmentID),
			zap.Error(err),
		)
		attempt.Prediction = model.RiskPrediction{
			PatientID:      sess.PatientID,
			AppointmentID:  slot.AppointmentID,
			RiskLevel:      model.RiskLevelLow,
			Recommendation: model.RecommendationMonitor,
		}
	} else {
		attempt.Prediction = prediction.Data
		attempt.PredictionDegraded = prediction.Fallback
	}
	attempt.State = StateRiskAssessed

	// Hold the slot. A failed booking aborts the flow with no terminal state.
	// TODO: take the phone number from the profile once signup stores it.
	booking, err := f.api.BookAppointment(ctx, apiclient.BookingRequest{
		PatientID:     sess.PatientID,
		AppointmentID: slot.AppointmentID,
		PatientName:   sess.Name,
		PhoneNumber:   defaultPhone,
	})
	if err != nil {
		return attempt, err
	}
	if !booking.Succeeded() {
		return attempt, fmt.Errorf("booking rejected: %s", booking.Status)
	}
	attempt.Booking = booking
	attempt.State = StateBooked

	// The slot is held now; remember that before the user decides anything.
	sess.HasUpcomingAppointment = true
	if err := f.store.Save(ctx, sess); err != nil {
		f.logger.Warn("Failed to persist upcoming-appointment flag", zap.Error(err))
	}

	if attempt.Prediction.RecommendsCancellation() {
		attempt.State = StateCancellationRecommended
		f.logger.Info("Booking flagged for cancellation review",
			zap.String("patient_id", sess.PatientID),
			zap.String("appointment_id", slot.AppointmentID),
			zap.Float64("no_show_probability", attempt.Prediction.NoShowProbability),
		)
		return attempt, nil
	}

	attempt.State = StateConfirmed
	attempt.Summary = f.summary(slot)
	f.logger.Info("Booking confirmed",
		zap.String("patient_id", sess.PatientID),
		zap.String("appointment_id", slot.AppointmentID),
		zap.String("risk_level", string(attempt.Prediction.RiskLevel)),
	)
	return attempt, nil
}

// AcceptCancellation releases a held slot after the user agrees with the
// high-risk recommendation. On success the upcoming-appointment flag is
// cleared and the patient history is refreshed.
func (f *BookingFlow) AcceptCancellation(ctx context.Context, attempt *Attempt) error {
	if attempt.State != StateCancellationRecommended {
		return fmt.Errorf("cannot cancel from state %q", attempt.State)
	}

	result, err := f.api.CancelAppointment(ctx, attempt.Slot.AppointmentID, attempt.PatientID)
	if err != nil {
		return err
	}
	if !result.Succeeded() {
		return fmt.Errorf("cancellation rejected: %s", result.Status)
	}

	attempt.State = StateCancelled

	if sess, err := f.store.Load(ctx); err == nil {
		sess.HasUpcomingAppointment = false
		if err := f.store.Save(ctx, sess); err != nil {
			f.logger.Warn("Failed to clear upcoming-appointment flag", zap.Error(err))
		}
	}

	// Replace the cached history wholesale; a degraded refresh is fine here.
	if history, err := f.api.ListPatientAppointments(ctx, attempt.PatientID); err == nil {
		attempt.Appointments = &history.Data
	}

	f.logger.Info("Recommended cancellation accepted",
		zap.String("patient_id", attempt.PatientID),
		zap.String("appointment_id", attempt.Slot.AppointmentID),
	)
	return nil
}

// KeepBooking confirms a held slot despite the cancellation recommendation.
func (f *BookingFlow) KeepBooking(attempt *Attempt) error {
	if attempt.State != StateCancellationRecommended {
		return fmt.Errorf("cannot confirm from state %q", attempt.State)
	}
	attempt.State = StateConfirmed
	attempt.Summary = f.summary(attempt.Slot)

	f.logger.Info("Booking kept despite high no-show risk",
		zap.String("patient_id", attempt.PatientID),
		zap.String("appointment_id", attempt.Slot.AppointmentID),
	)
	return nil
}

func (f *BookingFlow) summary(slot model.Slot) Summary {
	date := slot.DateArabic
	if date == "" {
		date = format.ArabicDate(slot.Datetime)
	}
	timeOfDay := slot.TimeArabic
	if timeOfDay == "" {
		timeOfDay = format.ArabicTime(slot.Datetime)
	}
	return Summary{
		Date:        date,
		Time:        timeOfDay,
		Center:      format.CityByCenterID(slot.CenterID),
		WaitMinutes: slot.EstimatedWaitMinutes,
	}
}
