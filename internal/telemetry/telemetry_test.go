package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/KirkDiggler/rpg-melee/internal/engine"
	"github.com/KirkDiggler/rpg-melee/internal/telemetry"
)

func TestNewWithGlobalMeter(t *testing.T) {
	m, err := telemetry.New(nil)
	require.NoError(t, err)
	require.NotNil(t, m)

	ctx := context.Background()
	assert.NotPanics(t, func() {
		m.EncounterStarted(ctx)
		m.RecordRound(ctx, engine.RoundStats{Actions: 4, DamageDealt: 12})
		m.EncounterFinished(ctx, "player")
		m.EncounterFinished(ctx, "")
		m.EncounterEnded(ctx)
	})
}

func TestNewWithMeter(t *testing.T) {
	m, err := telemetry.New(noop.NewMeterProvider().Meter("test"))
	require.NoError(t, err)
	assert.NotNil(t, m)
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *telemetry.Metrics
	ctx := context.Background()
	assert.NotPanics(t, func() {
		m.RecordRound(ctx, engine.RoundStats{Actions: 1})
		m.EncounterStarted(ctx)
		m.EncounterFinished(ctx, "enemy")
		m.EncounterEnded(ctx)
	})
}
