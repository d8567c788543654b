package main

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-melee/internal/engine"
	"github.com/KirkDiggler/rpg-melee/internal/engine/melee"
	"github.com/KirkDiggler/rpg-melee/internal/errors"
	"github.com/KirkDiggler/rpg-melee/internal/orchestrators/encounter"
	"github.com/KirkDiggler/rpg-melee/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-melee/internal/pkg/dice"
	"github.com/KirkDiggler/rpg-melee/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/rpg-melee/internal/redis"
	roundlog "github.com/KirkDiggler/rpg-melee/internal/repositories/round_log"
	"github.com/KirkDiggler/rpg-melee/internal/telemetry"
)

const (
	pingTimeout     = 3 * time.Second
	encounterPrefix = "enc"
)

// newRepository connects to Redis when an address is configured and keeps
// the log in memory otherwise
func newRepository(ctx context.Context) (roundlog.Repository, func(), error) {
	if cfg.RedisAddr == "" {
		return roundlog.NewInMemory(clock.New()), func() {}, nil
	}

	client, err := redisclient.NewClient(cfg.RedisAddr)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to create redis client")
	}
	cleanup := func() { _ = client.Close() }

	if err := redisclient.Ping(ctx, client, pingTimeout); err != nil {
		cleanup()
		return nil, nil, errors.WrapWithCode(err, errors.CodeUnavailable, "redis is unreachable")
	}

	repo, err := roundlog.NewRedisRepository(&roundlog.Config{
		Client: client,
		Clock:  clock.New(),
	})
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return repo, cleanup, nil
}

// newOrchestrator wires the melee engine behind the encounter orchestrator
func newOrchestrator(repo roundlog.Repository) (encounter.Service, error) {
	metrics, err := telemetry.New(nil)
	if err != nil {
		return nil, err
	}

	return encounter.NewOrchestrator(&encounter.Config{
		IDGenerator: idgen.NewUUID(encounterPrefix),
		NewEngine: func(bus events.EventBus) (engine.Engine, error) {
			eng, err := melee.New(&melee.Config{
				Dice:     dice.New(nil),
				EventBus: bus,
			})
			if err != nil {
				return nil, err
			}
			return eng, nil
		},
		Repository:  repo,
		RoundLogTTL: cfg.RoundLogTTL,
		Metrics:     metrics,
	})
}
