package fluctuation

import (
	"math"
	"math/rand/v2"
	"slices"
	"sync"

	"github.com/yanqian/envwatch/internal/domain/quality"
)

// Source yields uniform values in [0, 1).
type Source interface {
	Float64() float64
}

// Bounds configures the random walk of one pollutant.
type Bounds struct {
	MaxStep  float64
	Min      float64
	Max      float64
	SeedLow  float64
	SeedHigh float64
}

// DefaultBounds returns the walk parameters for every tracked pollutant.
func DefaultBounds() map[quality.Pollutant]Bounds {
	return map[quality.Pollutant]Bounds{
		quality.PM25:      {MaxStep: 10, Min: 1, Max: 400, SeedLow: 5, SeedHigh: 200},
		quality.CO2:       {MaxStep: 100, Min: 350, Max: 10000, SeedLow: 400, SeedHigh: 5000},
		quality.NO2:       {MaxStep: 20, Min: 1, Max: 1000, SeedLow: 10, SeedHigh: 500},
		quality.Turbidity: {MaxStep: 1, Min: 0.1, Max: 50, SeedLow: 0.5, SeedHigh: 25},
		quality.PH:        {MaxStep: 0.2, Min: 2, Max: 12, SeedLow: 4, SeedHigh: 10},
		quality.Lead:      {MaxStep: 3, Min: 0, Max: 100, SeedLow: 1, SeedHigh: 60},
	}
}

// Values is a copy of the walk state keyed by pollutant.
type Values map[quality.Pollutant]float64

// Model holds one running value per pollutant and nudges it on every advance.
// It is safe for concurrent use.
type Model struct {
	mu     sync.Mutex
	src    Source
	bounds map[quality.Pollutant]Bounds
	values Values
}

// Option customizes a Model.
type Option func(*Model)

// WithSource replaces the random source.
func WithSource(src Source) Option {
	return func(m *Model) {
		if src != nil {
			m.src = src
		}
	}
}

// WithBounds replaces the walk parameters.
func WithBounds(bounds map[quality.Pollutant]Bounds) Option {
	return func(m *Model) {
		if len(bounds) > 0 {
			m.bounds = bounds
		}
	}
}

// WithValues pins starting values instead of random seeds. Values are clamped
// to their bounds.
func WithValues(values Values) Option {
	return func(m *Model) {
		for p, v := range values {
			m.values[p] = v
		}
	}
}

// NewModel seeds a model. Pollutants not pinned with WithValues start at a
// uniform random point inside their seed range.
func NewModel(opts ...Option) *Model {
	m := &Model{
		src:    rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		bounds: DefaultBounds(),
		values: make(Values),
	}
	for _, opt := range opts {
		opt(m)
	}
	for _, p := range m.seedOrder() {
		b := m.bounds[p]
		if v, ok := m.values[p]; ok {
			m.values[p] = clamp(v, b.Min, b.Max)
			continue
		}
		seed := b.SeedLow + m.src.Float64()*(b.SeedHigh-b.SeedLow)
		m.values[p] = math.Round(seed*10) / 10
	}
	for p := range m.values {
		if _, ok := m.bounds[p]; !ok {
			delete(m.values, p)
		}
	}
	return m
}

// seedOrder lists tracked pollutants in a stable order: the known pollutants
// first, then any extra keys from WithBounds sorted by name.
func (m *Model) seedOrder() []quality.Pollutant {
	order := make([]quality.Pollutant, 0, len(m.bounds))
	for _, p := range quality.AllPollutants() {
		if _, ok := m.bounds[p]; ok {
			order = append(order, p)
		}
	}
	var extra []quality.Pollutant
	for p := range m.bounds {
		if !slices.Contains(order, p) {
			extra = append(extra, p)
		}
	}
	slices.Sort(extra)
	return append(order, extra...)
}

// Advance moves one pollutant by a bounded random step and returns the new
// value. The second result is false for pollutants the model does not track.
func (m *Model) Advance(p quality.Pollutant) (float64, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.advanceLocked(p)
}

// AdvanceAll advances every pollutant and returns the resulting state.
func (m *Model) AdvanceAll() Values {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range quality.AllPollutants() {
		m.advanceLocked(p)
	}
	return m.copyLocked()
}

// Values returns the current state without advancing it.
func (m *Model) Values() Values {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.copyLocked()
}

// Bounds reports the walk parameters for p.
func (m *Model) Bounds(p quality.Pollutant) (Bounds, bool) {
	b, ok := m.bounds[p]
	return b, ok
}

func (m *Model) advanceLocked(p quality.Pollutant) (float64, bool) {
	b, ok := m.bounds[p]
	if !ok {
		return 0, false
	}
	delta := (m.src.Float64() - 0.5) * 2 * b.MaxStep
	next := clamp(m.values[p]+delta, b.Min, b.Max)
	m.values[p] = next
	return next, true
}

func (m *Model) copyLocked() Values {
	out := make(Values, len(m.values))
	for p, v := range m.values {
		out[p] = v
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
