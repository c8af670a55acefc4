package model

// StatusSuccess is the status value the backend returns for accepted writes.
const StatusSuccess = "success"

// BookingResult is the backend response to a booking request.
type BookingResult struct {
	Status        string `json:"status"`
	Message       string `json:"message"`
	AppointmentID string `json:"appointment_id"`
}

func (r *BookingResult) Succeeded() bool {
	return r != nil && r.Status == StatusSuccess
}

// CancellationResult is the backend response to a cancellation request.
type CancellationResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (r *CancellationResult) Succeeded() bool {
	return r != nil && r.Status == StatusSuccess
}

// RescheduleResult is the backend response to a reschedule request.
type RescheduleResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (r *RescheduleResult) Succeeded() bool {
	return r != nil && r.Status == StatusSuccess
}
