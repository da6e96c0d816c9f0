package monitor

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/yanqian/envwatch/internal/domain/fluctuation"
	"github.com/yanqian/envwatch/internal/domain/quality"
	apperrors "github.com/yanqian/envwatch/pkg/errors"
	"github.com/yanqian/envwatch/pkg/util"
)

const defaultPollInterval = 3 * time.Second

// Service exposes the dashboard data contract to transports.
type Service interface {
	Current(ctx context.Context) Snapshot
	Stream(ctx context.Context) <-chan Snapshot
	SensorMap(ctx context.Context) []SensorSnapshot
	Alerts(ctx context.Context, snapshot Snapshot) []Alert
	Recommendations(ctx context.Context, snapshot Snapshot, role string) []Recommendation
	Dashboard(ctx context.Context, role string) (Dashboard, error)
	Thresholds() quality.Thresholds
	Roles() map[string]Role
	Locations() []Location
}

// Walker is the fluctuation state the service reads from.
type Walker interface {
	AdvanceAll() fluctuation.Values
	Values() fluctuation.Values
}

type service struct {
	cfg        Config
	walker     Walker
	thresholds quality.Thresholds
	locations  []Location
	logger     *slog.Logger
	now        func() time.Time
}

// NewService wires up the monitor domain.
func NewService(cfg Config, walker Walker, logger *slog.Logger) Service {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = defaultPollInterval
	}
	if strings.TrimSpace(cfg.DefaultRole) == "" {
		cfg.DefaultRole = RolePublic
	}
	return &service{
		cfg:        cfg,
		walker:     walker,
		thresholds: quality.DefaultThresholds(),
		locations:  SensorLocations(),
		logger:     logger.With("component", "monitor.service"),
		now:        util.NowUTC,
	}
}

func (s *service) Current(ctx context.Context) Snapshot {
	snap := BuildSnapshot(s.thresholds, s.walker.AdvanceAll(), s.now())
	s.logger.DebugContext(ctx, "snapshot generated", "air", snap.Air.Overall.String(), "water", snap.Water.Overall.String())
	return snap
}

// Stream emits a fresh snapshot immediately and then once per poll interval
// until ctx is cancelled.
func (s *service) Stream(ctx context.Context) <-chan Snapshot {
	out := make(chan Snapshot, 1)
	go func() {
		defer close(out)
		ticker := time.NewTicker(s.cfg.PollInterval)
		defer ticker.Stop()
		for {
			select {
			case out <- s.Current(ctx):
			case <-ctx.Done():
				return
			}
			select {
			case <-ticker.C:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

func (s *service) SensorMap(ctx context.Context) []SensorSnapshot {
	return Synthesize(s.thresholds, s.locations, s.walker.Values())
}

func (s *service) Alerts(ctx context.Context, snapshot Snapshot) []Alert {
	alerts := GenerateAlerts(snapshot, s.now())
	if len(alerts) > 0 {
		s.logger.InfoContext(ctx, "alerts generated", "count", len(alerts))
	}
	return alerts
}

func (s *service) Recommendations(ctx context.Context, snapshot Snapshot, role string) []Recommendation {
	return Recommendations(snapshot, role)
}

func (s *service) Dashboard(ctx context.Context, role string) (Dashboard, error) {
	key := strings.ToLower(strings.TrimSpace(role))
	if key == "" {
		key = s.cfg.DefaultRole
	}
	r, ok := LookupRole(key)
	if !ok {
		return Dashboard{}, apperrors.Wrap(apperrors.CodeInvalidRole, "unknown role "+key, nil)
	}

	snap := s.Current(ctx)
	view := Dashboard{Role: key, Snapshot: snap, Alerts: []Alert{}}
	if r.CanViewFeature(FeatureAlerts) {
		view.Alerts = s.Alerts(ctx, snap)
	}
	if r.CanViewFeature(FeatureRecommendations) {
		view.Recommendations = Recommendations(snap, key)
	}
	if r.CanViewFeature(FeatureMap) {
		view.Sensors = s.SensorMap(ctx)
	}
	return view, nil
}

func (s *service) Thresholds() quality.Thresholds {
	return quality.DefaultThresholds()
}

func (s *service) Roles() map[string]Role {
	return UserRoles()
}

func (s *service) Locations() []Location {
	return SensorLocations()
}
