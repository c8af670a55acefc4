package model

import "time"

type SlotStatus string

const (
	SlotStatusAvailable SlotStatus = "available"
	SlotStatusBooked    SlotStatus = "booked"
	SlotStatusCancelled SlotStatus = "cancelled"
)

type ServiceType string

const (
	ServiceTypeIDCard   ServiceType = "اصدار الهوية"     // national ID card issuance
	ServiceTypePassport ServiceType = "اصدار جواز السفر" // passport issuance
)

// Slot is a bookable unit of time at a center.
type Slot struct {
	AppointmentID        string      `json:"appointment_id"`
	CenterID             string      `json:"center_id"`
	Datetime             time.Time   `json:"datetime"`
	DateArabic           string      `json:"date_arabic"`
	TimeArabic           string      `json:"time_arabic"`
	IsPeakHour           bool        `json:"is_peak_hour"`
	EstimatedWaitMinutes int         `json:"estimated_wait_time"`
	ServiceType          ServiceType `json:"service_type"`
	Status               SlotStatus  `json:"status"`
}

// AvailableSlots is the per-center slot listing returned by the backend.
type AvailableSlots struct {
	CenterID   string `json:"center_id"`
	CenterName string `json:"center_name"`
	Slots      []Slot `json:"available_slots"`
	TotalSlots int    `json:"total_slots"`
	BestSlot   *Slot  `json:"best_slot,omitempty"`
	Message    string `json:"message"`
}
