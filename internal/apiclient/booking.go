package apiclient

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mawid-sa/mawid/internal/model"
)

// BookingRequest is the payload for booking a slot.
type BookingRequest struct {
	PatientID     string `json:"patient_id"`
	AppointmentID string `json:"appointment_id"`
	PatientName   string `json:"patient_name"`
	PhoneNumber   string `json:"phone_number"`
}

// Writes never degrade to fallback data: a booking or cancellation that
// silently "succeeds" against fabricated data would show the user a false
// confirmation. Transport failures are returned to the caller as-is.

// BookAppointment books a slot for a patient.
func (c *Client) BookAppointment(ctx context.Context, req BookingRequest) (*model.BookingResult, error) {
	var resp model.BookingResult
	if err := c.post(ctx, "/appointments/book", req, &resp); err != nil {
		c.logger.Error("Booking request failed",
			zap.String("patient_id", req.PatientID),
			zap.String("appointment_id", req.AppointmentID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("book appointment: %w", err)
	}

	c.logger.Info("Appointment booked",
		zap.String("patient_id", req.PatientID),
		zap.String("appointment_id", req.AppointmentID),
		zap.String("status", resp.Status),
	)
	return &resp, nil
}

type cancelRequest struct {
	AppointmentID string `json:"appointment_id"`
	PatientID     string `json:"patient_id"`
	Action        string `json:"action"`
}

// CancelAppointment cancels a booked appointment.
func (c *Client) CancelAppointment(ctx context.Context, appointmentID, patientID string) (*model.CancellationResult, error) {
	var resp model.CancellationResult
	err := c.post(ctx, "/appointments/cancel", cancelRequest{
		AppointmentID: appointmentID,
		PatientID:     patientID,
		Action:        "cancel",
	}, &resp)
	if err != nil {
		c.logger.Error("Cancellation request failed",
			zap.String("patient_id", patientID),
			zap.String("appointment_id", appointmentID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("cancel appointment: %w", err)
	}

	c.logger.Info("Appointment cancelled",
		zap.String("patient_id", patientID),
		zap.String("appointment_id", appointmentID),
		zap.String("status", resp.Status),
	)
	return &resp, nil
}

type rescheduleRequest struct {
	OldAppointmentID string `json:"old_appointment_id"`
	NewAppointmentID string `json:"new_appointment_id"`
	PatientID        string `json:"patient_id"`
}

// RescheduleAppointment moves a booking to a new slot.
func (c *Client) RescheduleAppointment(ctx context.Context, oldID, newID, patientID string) (*model.RescheduleResult, error) {
	var resp model.RescheduleResult
	err := c.post(ctx, "/appointments/reschedule", rescheduleRequest{
		OldAppointmentID: oldID,
		NewAppointmentID: newID,
		PatientID:        patientID,
	}, &resp)
	if err != nil {
		c.logger.Error("Reschedule request failed",
			zap.String("patient_id", patientID),
			zap.String("old_appointment_id", oldID),
			zap.String("new_appointment_id", newID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("reschedule appointment: %w", err)
	}

	c.logger.Info("Appointment rescheduled",
		zap.String("patient_id", patientID),
		zap.String("old_appointment_id", oldID),
		zap.String("new_appointment_id", newID),
		zap.String("status", resp.Status),
	)
	return &resp, nil
}
