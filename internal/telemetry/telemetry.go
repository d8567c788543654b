// Package telemetry records combat metrics through the global OpenTelemetry
// meter provider. Without an SDK installed every instrument is a no-op.
package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/KirkDiggler/rpg-melee/internal/engine"
	"github.com/KirkDiggler/rpg-melee/internal/errors"
)

const instrumentationName = "github.com/KirkDiggler/rpg-melee/internal/telemetry"

// Metrics holds the combat instruments
type Metrics struct {
	rounds   metric.Int64Counter
	actions  metric.Int64Counter
	damage   metric.Int64Counter
	finished metric.Int64Counter
	active   metric.Int64UpDownCounter
}

// New creates the instruments on the given meter. A nil meter uses the
// global provider.
func New(m metric.Meter) (*Metrics, error) {
	if m == nil {
		m = otel.Meter(instrumentationName)
	}

	var (
		mt  Metrics
		err error
	)

	mt.rounds, err = m.Int64Counter(
		"melee.rounds",
		metric.WithDescription("Melee rounds resolved"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "creating rounds counter")
	}

	mt.actions, err = m.Int64Counter(
		"melee.actions",
		metric.WithDescription("Actions taken by fighters"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "creating actions counter")
	}

	mt.damage, err = m.Int64Counter(
		"melee.damage",
		metric.WithDescription("Hit points of damage dealt"),
		metric.WithUnit("{hp}"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "creating damage counter")
	}

	mt.finished, err = m.Int64Counter(
		"melee.encounters.finished",
		metric.WithDescription("Encounters that reached an outcome"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "creating finished counter")
	}

	mt.active, err = m.Int64UpDownCounter(
		"melee.encounters.active",
		metric.WithDescription("Encounters currently held in memory"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "creating active gauge")
	}

	return &mt, nil
}

// RecordRound adds one round and its totals
func (m *Metrics) RecordRound(ctx context.Context, stats engine.RoundStats) {
	if m == nil {
		return
	}
	m.rounds.Add(ctx, 1)
	m.actions.Add(ctx, int64(stats.Actions))
	m.damage.Add(ctx, int64(stats.DamageDealt))
}

// EncounterStarted marks an encounter as active
func (m *Metrics) EncounterStarted(ctx context.Context) {
	if m == nil {
		return
	}
	m.active.Add(ctx, 1)
}

// EncounterFinished counts an outcome. An empty side means nobody was left.
func (m *Metrics) EncounterFinished(ctx context.Context, winningSide string) {
	if m == nil {
		return
	}
	if winningSide == "" {
		winningSide = "none"
	}
	m.finished.Add(ctx, 1, metric.WithAttributes(attribute.String("winning_side", winningSide)))
}

// EncounterEnded marks an encounter as no longer held
func (m *Metrics) EncounterEnded(ctx context.Context) {
	if m == nil {
		return
	}
	m.active.Add(ctx, -1)
}
