package apiclient

import (
	"context"

	"go.uber.org/zap"

	"github.com/mawid-sa/mawid/internal/model"
)

// ListAvailableSlots fetches the open slots for a center. On transport
// failure it synthesizes a deterministic schedule for the next five days.
func (c *Client) ListAvailableSlots(ctx context.Context, centerID string) (Degraded[model.AvailableSlots], error) {
	var resp model.AvailableSlots

	err := c.post(ctx, "/appointments/available", map[string]string{"center_id": centerID}, &resp)
	if err == nil {
		return Degraded[model.AvailableSlots]{Data: resp}, nil
	}

	if ctx.Err() != nil {
		return Degraded[model.AvailableSlots]{}, err
	}

	c.logger.Warn("Available slots request failed, serving fallback schedule",
		zap.String("center_id", centerID),
		zap.Error(err),
	)
	return Degraded[model.AvailableSlots]{
		Data:     mockAvailableSlots(centerID, c.now()),
		Fallback: true,
		Cause:    err,
	}, nil
}
