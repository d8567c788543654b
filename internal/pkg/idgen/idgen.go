// Package idgen mints encounter identifiers
package idgen

import (
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/KirkDiggler/rpg-melee/internal/errors"
)

type Generator interface {
	Generate() string
}

// UUIDGenerator mints "<prefix>_<uuid>" ids from version 7 UUIDs, which sort
// by creation time
type UUIDGenerator struct {
	prefix string
}

func NewUUID(prefix string) *UUIDGenerator {
	return &UUIDGenerator{prefix: prefix}
}

func (g *UUIDGenerator) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return join(g.prefix, id.String())
}

// Parse checks that id is "<prefix>_<uuid>" and returns the UUID part
func Parse(prefix, id string) (uuid.UUID, error) {
	raw := id
	if prefix != "" {
		var ok bool
		raw, ok = strings.CutPrefix(id, prefix+"_")
		if !ok {
			return uuid.Nil, errors.InvalidArgumentf("id %q must start with %s_", id, prefix)
		}
	}

	parsed, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed id "+strconv.Quote(id))
	}
	return parsed, nil
}

// SequentialGenerator mints "<prefix>_1", "<prefix>_2" and so on. Safe for
// concurrent use.
type SequentialGenerator struct {
	prefix string
	next   atomic.Uint64
}

func NewSequential(prefix string) *SequentialGenerator {
	return &SequentialGenerator{prefix: prefix}
}

func (g *SequentialGenerator) Generate() string {
	return join(g.prefix, strconv.FormatUint(g.next.Add(1), 10))
}

func join(prefix, id string) string {
	if prefix == "" {
		return id
	}
	return prefix + "_" + id
}
