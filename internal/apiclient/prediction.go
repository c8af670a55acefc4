package apiclient

import (
	"context"

	"go.uber.org/zap"

	"github.com/mawid-sa/mawid/internal/model"
)

type predictRequest struct {
	PatientID     string `json:"patient_id"`
	AppointmentID string `json:"appointment_id"`
	CenterID      string `json:"center_id"`
}

// PredictNoShowRisk asks the ML endpoint for the no-show probability of a
// booking attempt. On transport failure it degrades to a bounded local
// prediction keyed off the request identifiers.
func (c *Client) PredictNoShowRisk(ctx context.Context, patientID, appointmentID, centerID string) (Degraded[model.RiskPrediction], error) {
	var resp model.RiskPrediction

	err := c.post(ctx, "/predict/no-show", predictRequest{
		PatientID:     patientID,
		AppointmentID: appointmentID,
		CenterID:      centerID,
	}, &resp)
	if err == nil {
		return Degraded[model.RiskPrediction]{Data: resp}, nil
	}

	if ctx.Err() != nil {
		return Degraded[model.RiskPrediction]{}, err
	}

	c.logger.Warn("No-show prediction failed, serving fallback prediction",
		zap.String("patient_id", patientID),
		zap.String("appointment_id", appointmentID),
		zap.Error(err),
	)
	return Degraded[model.RiskPrediction]{
		Data:     mockPrediction(patientID, appointmentID),
		Fallback: true,
		Cause:    err,
	}, nil
}
