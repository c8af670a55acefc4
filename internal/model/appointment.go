package model

import "time"

type AppointmentStatus string

const (
	AppointmentStatusBooked    AppointmentStatus = "booked"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusAvailable AppointmentStatus = "available"
)

// Appointment is a slot once associated with a patient.
type Appointment struct {
	AppointmentID string            `json:"appointment_id"`
	PatientID     string            `json:"patient_id"`
	CenterID      string            `json:"center_id"`
	CenterName    string            `json:"center_name"`
	Datetime      time.Time         `json:"datetime"`
	ServiceType   ServiceType       `json:"service_type"`
	Status        AppointmentStatus `json:"status"`
}

// PatientAppointments is the per-patient history returned by the backend.
type PatientAppointments struct {
	PatientID    string        `json:"patient_id"`
	Appointments []Appointment `json:"appointments"`
	Count        int           `json:"count"`
}
