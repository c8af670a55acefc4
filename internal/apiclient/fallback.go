package apiclient

import (
	"fmt"
	"hash/fnv"
	"time"

	"github.com/mawid-sa/mawid/internal/format"
	"github.com/mawid-sa/mawid/internal/model"
)

// Fallback data served when the backend is unreachable. Everything here is
// deterministic given its inputs: the same center or patient id always yields
// the same synthesized records.

var fallbackCenters = []model.Center{
	{
		ID:           "101",
		CenterID:     "101",
		Name:         "مركز الأحوال المدنية - الرياض",
		City:         "الرياض",
		Address:      "شارع الملك فهد - الرياض",
		Phone:        "0112345678",
		WorkingHours: "8:00 ص - 4:00 م",
	},
	{
		ID:           "102",
		CenterID:     "102",
		Name:         "مركز الأحوال المدنية - جدة",
		City:         "جدة",
		Address:      "شارع الأمير سلطان - جدة",
		Phone:        "0123456789",
		WorkingHours: "8:00 ص - 4:00 م",
	},
	{
		ID:           "103",
		CenterID:     "103",
		Name:         "مركز الأحوال المدنية - الدمام",
		City:         "الدمام",
		Address:      "شارع الملك عبدالله - الدمام",
		Phone:        "0134567890",
		WorkingHours: "8:00 ص - 4:00 م",
	},
	{
		ID:           "104",
		CenterID:     "104",
		Name:         "مركز الأحوال المدنية - مكة",
		City:         "مكة المكرمة",
		Address:      "شارع العزيزية - مكة",
		Phone:        "0145678901",
		WorkingHours: "8:00 ص - 4:00 م",
	},
	{
		ID:           "105",
		CenterID:     "105",
		Name:         "مركز الأحوال المدنية - المدينة",
		City:         "المدينة المنورة",
		Address:      "شارع سلطانه - المدينة",
		Phone:        "0156789012",
		WorkingHours: "8:00 ص - 4:00 م",
	},
}

func mockCenters() []model.Center {
	centers := make([]model.Center, len(fallbackCenters))
	copy(centers, fallbackCenters)
	return centers
}

// mockAvailableSlots synthesizes two slots per day for the next five days:
// a peak-hour morning slot and an off-peak afternoon slot.
func mockAvailableSlots(centerID string, now time.Time) model.AvailableSlots {
	slots := make([]model.Slot, 0, 10)

	for day := 1; day <= 5; day++ {
		date := now.AddDate(0, 0, day)

		morning := time.Date(date.Year(), date.Month(), date.Day(), 9, 0, 0, 0, date.Location())
		slots = append(slots, model.Slot{
			AppointmentID:        fmt.Sprintf("APP_%s_%d_MORNING", centerID, day),
			CenterID:             centerID,
			Datetime:             morning,
			DateArabic:           format.ArabicDate(morning),
			TimeArabic:           "9:00 صباحاً",
			IsPeakHour:           true,
			EstimatedWaitMinutes: 30,
			ServiceType:          model.ServiceTypeIDCard,
			Status:               model.SlotStatusAvailable,
		})

		afternoon := time.Date(date.Year(), date.Month(), date.Day(), 14, 30, 0, 0, date.Location())
		slots = append(slots, model.Slot{
			AppointmentID:        fmt.Sprintf("APP_%s_%d_AFTERNOON", centerID, day),
			CenterID:             centerID,
			Datetime:             afternoon,
			DateArabic:           format.ArabicDate(afternoon),
			TimeArabic:           "2:30 مساءً",
			IsPeakHour:           false,
			EstimatedWaitMinutes: 15,
			ServiceType:          model.ServiceTypeIDCard,
			Status:               model.SlotStatusAvailable,
		})
	}

	var best *model.Slot
	for i := range slots {
		if !slots[i].IsPeakHour && slots[i].EstimatedWaitMinutes == 15 {
			best = &slots[i]
			break
		}
	}
	if best == nil {
		best = &slots[0]
	}

	return model.AvailableSlots{
		CenterID:   centerID,
		CenterName: fmt.Sprintf("مركز الأحوال المدنية - %s", format.CityByCenterID(centerID)),
		Slots:      slots,
		TotalSlots: len(slots),
		BestSlot:   best,
		Message:    fmt.Sprintf("تم العثور على %d موعد متاح", len(slots)),
	}
}

// fallbackProbabilities is the fixed sample set the offline prediction draws
// from. The pick is keyed off the request identifiers so repeated calls for
// the same booking agree.
var fallbackProbabilities = []float64{0.65, 0.45, 0.25}

func mockPrediction(patientID, appointmentID string) model.RiskPrediction {
	h := fnv.New32a()
	h.Write([]byte(patientID))
	h.Write([]byte("|"))
	h.Write([]byte(appointmentID))
	probability := fallbackProbabilities[h.Sum32()%uint32(len(fallbackProbabilities))]

	return model.RiskPrediction{
		PatientID:            patientID,
		AppointmentID:        appointmentID,
		NoShowProbability:    probability,
		RiskLevel:            model.RiskLevelFor(probability),
		HistoricalNoShowRate: probability * 0.8,
		Recommendation:       model.RecommendationFor(probability),
		Message:              model.RiskMessageFor(probability),
	}
}

// mockPatientAppointments synthesizes a small history: one upcoming booking,
// one cancelled visit yesterday, and one far-future passport booking.
func mockPatientAppointments(patientID string, now time.Time) model.PatientAppointments {
	appointments := []model.Appointment{
		{
			AppointmentID: fmt.Sprintf("APP_101_%s", patientID),
			PatientID:     patientID,
			CenterID:      "101",
			CenterName:    "مركز الأحوال المدنية - الرياض",
			Datetime:      now.AddDate(0, 0, 1),
			ServiceType:   model.ServiceTypeIDCard,
			Status:        model.AppointmentStatusBooked,
		},
		{
			AppointmentID: fmt.Sprintf("APP_102_%s", patientID),
			PatientID:     patientID,
			CenterID:      "102",
			CenterName:    "مركز الأحوال المدنية - جدة",
			Datetime:      now.AddDate(0, 0, -1),
			ServiceType:   model.ServiceTypeIDCard,
			Status:        model.AppointmentStatusCancelled,
		},
		{
			AppointmentID: fmt.Sprintf("APP_103_%s", patientID),
			PatientID:     patientID,
			CenterID:      "103",
			CenterName:    "مركز الأحوال المدنية - الدمام",
			Datetime:      now.AddDate(0, 0, 7),
			ServiceType:   model.ServiceTypePassport,
			Status:        model.AppointmentStatusBooked,
		},
	}

	return model.PatientAppointments{
		PatientID:    patientID,
		Appointments: appointments,
		Count:        len(appointments),
	}
}
