package melee

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-melee/internal/engine"
)

// Event types published on the bus
const (
	EventLog           = "melee.log"
	EventAction        = "melee.action"
	EventRoundComplete = "melee.round_complete"
	EventCombatEnded   = "melee.combat_ended"
)

// Event context keys
const (
	KeyMessage     = "message"
	KeyCategory    = "category"
	KeyRound       = "round"
	KeyAction      = "action"
	KeyStats       = "stats"
	KeyWinningSide = "winning_side"
)

// logf narrates one transition to the log callback and the event bus
func (e *Engine) logf(ctx context.Context, category engine.LogCategory, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if e.opts.Log != nil {
		e.opts.Log(msg, category)
	}
	e.publish(ctx, EventLog, nil, nil, map[string]any{
		KeyMessage:  msg,
		KeyCategory: string(category),
		KeyRound:    e.round,
	})
}

// narrator adapts logf to the subsystems' func(string) loggers
func (e *Engine) narrator(ctx context.Context, category engine.LogCategory) func(string) {
	return func(msg string) {
		e.logf(ctx, category, "%s", msg)
	}
}

func (e *Engine) publish(ctx context.Context, eventType string, source, target core.Entity, data map[string]any) {
	if e.bus == nil {
		return
	}

	ev := events.NewGameEvent(eventType, source, target)
	for k, v := range data {
		ev.Context().Set(k, v)
	}
	if err := e.bus.Publish(ctx, ev); err != nil {
		slog.Warn("Failed to publish combat event",
			"event_type", eventType,
			"error", err)
	}
}
