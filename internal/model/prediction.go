package model

// RiskLevel is the no-show risk tier. The backend speaks Arabic here and the
// client follows its vocabulary.
type RiskLevel string

const (
	RiskLevelHigh   RiskLevel = "عالي"
	RiskLevelMedium RiskLevel = "متوسط"
	RiskLevelLow    RiskLevel = "منخفض"
)

// Recommendation is the action the risk model suggests for a booking.
type Recommendation string

const (
	RecommendationCancel  Recommendation = "إلغاء"
	RecommendationConfirm Recommendation = "تأكيد"
	RecommendationMonitor Recommendation = "متابعة"
)

// RiskPrediction is the no-show prediction for a single booking attempt.
// Ephemeral: produced per attempt, never persisted by the client.
type RiskPrediction struct {
	PatientID            string         `json:"patient_id"`
	AppointmentID        string         `json:"appointment_id"`
	NoShowProbability    float64        `json:"no_show_probability"`
	RiskLevel            RiskLevel      `json:"risk_level"`
	HistoricalNoShowRate float64        `json:"historical_no_show_rate"`
	Recommendation       Recommendation `json:"recommendation"`
	Message              string         `json:"message"`
}

// RecommendsCancellation reports whether the prediction should route the
// patient to the cancellation-recommended branch.
func (p *RiskPrediction) RecommendsCancellation() bool {
	return p != nil && p.RiskLevel == RiskLevelHigh && p.Recommendation == RecommendationCancel
}

// RiskLevelFor maps a no-show probability to its tier.
func RiskLevelFor(probability float64) RiskLevel {
	switch {
	case probability >= 0.6:
		return RiskLevelHigh
	case probability >= 0.3:
		return RiskLevelMedium
	default:
		return RiskLevelLow
	}
}

// RecommendationFor maps a no-show probability to the suggested action.
func RecommendationFor(probability float64) Recommendation {
	switch {
	case probability >= 0.6:
		return RecommendationCancel
	case probability >= 0.3:
		return RecommendationConfirm
	default:
		return RecommendationMonitor
	}
}

// RiskMessageFor returns the advisory text shown with a prediction tier.
func RiskMessageFor(probability float64) string {
	switch {
	case probability >= 0.6:
		return "احتمالية عالية لعدم الحضور. يوصى بإرسال تنبيه عاجل للمريض للتفكير في الإلغاء"
	case probability >= 0.3:
		return "احتمالية متوسطة لعدم الحضور. يوصى بإرسال تنبيه تأكيدي للمريض"
	default:
		return "احتمالية منخفضة لعدم الحضور. الموعد طبيعي، لا داعي للتنبيه"
	}
}
