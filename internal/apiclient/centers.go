package apiclient

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/mawid-sa/mawid/internal/model"
)

// ListCenters fetches the national center list. On transport failure it
// degrades to the built-in center table so the app stays browsable offline.
func (c *Client) ListCenters(ctx context.Context) (Degraded[[]model.Center], error) {
	var resp struct {
		Centers []model.Center `json:"centers"`
	}

	err := c.get(ctx, "/centers", &resp)
	if err == nil {
		return Degraded[[]model.Center]{Data: resp.Centers}, nil
	}

	// A cancelled context means the caller navigated away; returning
	// fallback data here would overwrite newer state.
	if ctx.Err() != nil {
		return Degraded[[]model.Center]{}, err
	}

	c.logger.Warn("Centers request failed, serving fallback data", zap.Error(err))
	return Degraded[[]model.Center]{Data: mockCenters(), Fallback: true, Cause: err}, nil
}

// SearchCenters filters the center list client-side by name, city or center
// id substring. A blank term returns the unfiltered list.
func (c *Client) SearchCenters(ctx context.Context, term string) (Degraded[[]model.Center], error) {
	centers, err := c.ListCenters(ctx)
	if err != nil {
		return Degraded[[]model.Center]{}, err
	}

	term = strings.TrimSpace(term)
	if term == "" {
		return centers, nil
	}

	filtered := make([]model.Center, 0, len(centers.Data))
	for _, center := range centers.Data {
		if strings.Contains(center.Name, term) ||
			strings.Contains(center.City, term) ||
			strings.Contains(center.CenterID, term) {
			filtered = append(filtered, center)
		}
	}

	return Degraded[[]model.Center]{Data: filtered, Fallback: centers.Fallback, Cause: centers.Cause}, nil
}
