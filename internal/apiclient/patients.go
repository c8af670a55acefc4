package apiclient

import (
	"context"

	"go.uber.org/zap"

	"github.com/mawid-sa/mawid/internal/model"
)

// ListPatientAppointments fetches the booking history for a patient. On
// transport failure it degrades to a deterministic three-entry history so
// the history view stays usable offline.
func (c *Client) ListPatientAppointments(ctx context.Context, patientID string) (Degraded[model.PatientAppointments], error) {
	var resp model.PatientAppointments

	err := c.get(ctx, "/appointments/"+patientID, &resp)
	if err == nil {
		if resp.PatientID == "" {
			resp.PatientID = patientID
		}
		return Degraded[model.PatientAppointments]{Data: resp}, nil
	}

	if ctx.Err() != nil {
		return Degraded[model.PatientAppointments]{}, err
	}

	c.logger.Warn("Patient appointments request failed, serving fallback history",
		zap.String("patient_id", patientID),
		zap.Error(err),
	)
	return Degraded[model.PatientAppointments]{
		Data:     mockPatientAppointments(patientID, c.now()),
		Fallback: true,
		Cause:    err,
	}, nil
}
