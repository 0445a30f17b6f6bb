// Package persist serializes the plan registry to a single key of the
// key-value store.
//
// Persistence is fire and forget. Write failures are logged and dropped, and
// anything that cannot be decoded on load is treated as if nothing had been
// saved.
package persist

import (
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/inovacc/droneplan/internal/model"
	"github.com/inovacc/droneplan/internal/store"
)

// PlansKey holds the JSON array of saved plans.
const PlansKey = "plans"

type Adapter struct {
	store  store.Store
	logger *slog.Logger
}

func NewAdapter(s store.Store, logger *slog.Logger) *Adapter {
	return &Adapter{store: s, logger: logger}
}

// Load returns the saved plans in stored order. An absent or malformed value
// yields no plans.
func (a *Adapter) Load() []model.Plan {
	data, err := a.store.Get(PlansKey)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			a.logger.Warn("reading saved plans", "error", err)
		}

		return nil
	}

	plans, err := Decode(data)
	if err != nil {
		a.logger.Debug("ignoring malformed saved plans", "error", err)
		return nil
	}

	return plans
}

// Save overwrites the stored registry with plans.
func (a *Adapter) Save(plans []model.Plan) {
	data, err := Encode(plans)
	if err != nil {
		a.logger.Error("encoding plans", "error", err)
		return
	}

	if err := a.store.Set(PlansKey, data); err != nil {
		a.logger.Error("writing plans", "error", err, "count", len(plans))
		return
	}

	a.logger.Debug("plans written", "count", len(plans), "bytes", len(data))
}

// Reset removes the stored registry.
func (a *Adapter) Reset() {
	if err := a.store.Remove(PlansKey); err != nil {
		a.logger.Error("removing plans", "error", err)
		return
	}

	a.logger.Info("saved plans removed")
}

// Encode serializes plans as a JSON array. A nil slice encodes as [].
func Encode(plans []model.Plan) ([]byte, error) {
	if plans == nil {
		plans = []model.Plan{}
	}

	return json.Marshal(plans)
}

// Decode parses a JSON array of plans. The literal null decodes to no plans.
func Decode(data []byte) ([]model.Plan, error) {
	var plans []model.Plan
	if err := json.Unmarshal(data, &plans); err != nil {
		return nil, err
	}

	for i := range plans {
		if plans[i].Points == nil {
			plans[i].Points = []model.Point{}
		}
	}

	return plans, nil
}
