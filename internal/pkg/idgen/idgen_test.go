package idgen_test

import (
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-melee/internal/errors"
	"github.com/KirkDiggler/rpg-melee/internal/pkg/idgen"
)

func TestUUIDGenerator(t *testing.T) {
	gen := idgen.NewUUID("enc")

	ids := make([]string, 50)
	for i := range ids {
		ids[i] = gen.Generate()
	}

	assert.True(t, strings.HasPrefix(ids[0], "enc_"))
	assert.NotEqual(t, ids[0], ids[1])
	assert.True(t, sort.StringsAreSorted(ids), "version 7 ids sort by creation time")

	parsed, err := idgen.Parse("enc", ids[0])
	require.NoError(t, err)
	assert.Equal(t, 7, int(parsed.Version()))
}

func TestParse(t *testing.T) {
	testCases := []struct {
		name   string
		prefix string
		id     string
		valid  bool
	}{
		{"prefixed", "enc", "enc_0192f0c4-7c1e-7a3b-9d2e-5f6a7b8c9d0e", true},
		{"no prefix wanted", "", "0192f0c4-7c1e-7a3b-9d2e-5f6a7b8c9d0e", true},
		{"wrong prefix", "enc", "rnd_0192f0c4-7c1e-7a3b-9d2e-5f6a7b8c9d0e", false},
		{"sequential id", "enc", "enc_1", false},
		{"empty", "enc", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := idgen.Parse(tc.prefix, tc.id)
			if tc.valid {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.IsInvalidArgument(err))
		})
	}
}

func TestSequentialGenerator(t *testing.T) {
	gen := idgen.NewSequential("enc")

	assert.Equal(t, "enc_1", gen.Generate())
	assert.Equal(t, "enc_2", gen.Generate())
	assert.Equal(t, "1", idgen.NewSequential("").Generate())
}

func TestSequentialGeneratorConcurrent(t *testing.T) {
	gen := idgen.NewSequential("enc")

	var (
		mu   sync.Mutex
		seen = make(map[string]bool)
		wg   sync.WaitGroup
	)
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 25 {
				id := gen.Generate()
				mu.Lock()
				seen[id] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, 200)
}
