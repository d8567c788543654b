package roundlog_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-melee/internal/errors"
	"github.com/KirkDiggler/rpg-melee/internal/pkg/clock"
	roundlog "github.com/KirkDiggler/rpg-melee/internal/repositories/round_log"
)

func TestInMemoryRepository(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2026, 10, 1, 9, 30, 0, 0, time.UTC)
	repo := roundlog.NewInMemory(&clock.Fixed{At: at})

	summary := &roundlog.RoundSummary{EncounterID: "enc_1", Round: 1, Narration: []string{"Melee round 1 begins"}}
	out, err := repo.Append(ctx, roundlog.AppendInput{Summary: summary})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Rounds)
	assert.Equal(t, at, out.Summary.RecordedAt)

	// stored copies are isolated from the caller
	summary.Narration[0] = "changed"
	out.Summary.Round = 99

	_, err = repo.Append(ctx, roundlog.AppendInput{Summary: &roundlog.RoundSummary{EncounterID: "enc_1", Round: 2}})
	require.NoError(t, err)

	list, err := repo.List(ctx, roundlog.ListInput{EncounterID: "enc_1"})
	require.NoError(t, err)
	require.Len(t, list.Summaries, 2)
	assert.Equal(t, 1, list.Summaries[0].Round)
	assert.Equal(t, "Melee round 1 begins", list.Summaries[0].Narration[0])

	del, err := repo.Delete(ctx, roundlog.DeleteInput{EncounterID: "enc_1"})
	require.NoError(t, err)
	assert.Equal(t, 2, del.RoundsDeleted)

	_, err = repo.Delete(ctx, roundlog.DeleteInput{EncounterID: "enc_1"})
	assert.True(t, errors.IsNotFound(err))

	_, err = repo.Append(ctx, roundlog.AppendInput{})
	assert.True(t, errors.IsInvalidArgument(err))
}
