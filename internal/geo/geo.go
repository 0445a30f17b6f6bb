// Package geo resolves the position the map is first centered on.
package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/inovacc/droneplan/internal/model"
)

// Locator is a one-shot position lookup.
type Locator interface {
	Locate(ctx context.Context) (model.Point, error)
}

// New returns the locator selected by the config.
func New(cfg model.Config) Locator {
	if cfg.Locator == model.LocatorFixed {
		return Fixed(cfg.Home())
	}

	return &IPLocator{URL: cfg.LocatorURL, Client: http.DefaultClient}
}

// Fixed always answers with the same position.
type Fixed model.Point

func (f Fixed) Locate(ctx context.Context) (model.Point, error) {
	if err := ctx.Err(); err != nil {
		return model.Point{}, err
	}

	return model.Point(f), nil
}

// IPLocator asks an ip-api.com compatible endpoint where the public address
// of this machine is.
type IPLocator struct {
	URL    string
	Client *http.Client
}

type ipAPIResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

var ErrLookupFailed = errors.New("position lookup failed")

// LookupError wraps a failed position lookup. It matches ErrLookupFailed.
type LookupError struct {
	URL string
	Err error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("position lookup at %s failed: %v", e.URL, e.Err)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

func (e *LookupError) Is(target error) bool {
	return target == ErrLookupFailed
}

func (l *IPLocator) Locate(ctx context.Context) (model.Point, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.URL, nil)
	if err != nil {
		return model.Point{}, l.fail(err)
	}

	resp, err := l.Client.Do(req)
	if err != nil {
		return model.Point{}, l.fail(err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return model.Point{}, l.fail(fmt.Errorf("unexpected status %s", resp.Status))
	}

	var body ipAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return model.Point{}, l.fail(fmt.Errorf("decoding response: %w", err))
	}

	if body.Status != "success" {
		return model.Point{}, l.fail(fmt.Errorf("lookup refused: %s", body.Message))
	}

	return model.Point{Lat: body.Lat, Lng: body.Lon}, nil
}

func (l *IPLocator) fail(err error) error {
	return &LookupError{URL: l.URL, Err: err}
}
