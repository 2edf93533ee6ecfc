package location

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dpkp-bogor/presensi-backend-go/internal/pkg/geo"
)

// HTTPSource reads the current position from a device bridge endpoint that
// answers GET with {"latitude": ..., "longitude": ...}.
type HTTPSource struct {
	url    string
	client *http.Client
}

func NewHTTPSource(url string) *HTTPSource {
	return &HTTPSource{url: url, client: &http.Client{}}
}

func (s *HTTPSource) CurrentPosition(ctx context.Context) (geo.Point, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return geo.Point{}, fmt.Errorf("failed to build position request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return geo.Point{}, fmt.Errorf("failed to reach position source: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusForbidden:
		return geo.Point{}, ErrPermissionDenied
	default:
		return geo.Point{}, ErrPositionUnavailable
	}

	var body struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return geo.Point{}, fmt.Errorf("failed to decode position response: %w", err)
	}

	return geo.Point{Latitude: body.Latitude, Longitude: body.Longitude}, nil
}
