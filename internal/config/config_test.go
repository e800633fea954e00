package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackbox/internal/game"
)

const sample = `
default_layout = "corners"
history_dir    = "games"

rules {
  starting_score = 30
  wrong_guess_cost = 3
}

log {
  level = "debug"
}

layout "corners" {
  atoms = [[1, 1], [1, 8], [8, 1], [8, 8]]
}

layout "chaos" {
  random = 6
  seed   = 1234
}
`

func TestParse(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte(sample), "sample.hcl")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "corners", cfg.DefaultLayout)
	assert.Equal(t, "games", cfg.HistoryDir)
	assert.Equal(t, game.Rules{StartingScore: 30, BorderCost: 1, WrongGuessCost: 3}, cfg.GameRules())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "blackbox.log", cfg.Log.File, "unset fields keep defaults")
	assert.Equal(t, []string{"chaos", "corners"}, cfg.LayoutNames())

	l, err := cfg.Layout("")
	require.NoError(t, err)
	atoms, seed, err := l.Resolve(nil, nil)
	require.NoError(t, err)
	assert.Zero(t, seed)
	assert.Equal(t, []game.Coord{game.C(1, 1), game.C(1, 8), game.C(8, 1), game.C(8, 8)}, atoms)
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte(`layout "x" {`), "broken.hcl")
	assert.ErrorContains(t, err, "failed to parse HCL file")

	_, err = Parse([]byte(`unknown = 1`), "unknown.hcl")
	assert.ErrorContains(t, err, "failed to decode HCL")
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "classic", cfg.DefaultLayout)
	assert.Equal(t, game.DefaultRules(), cfg.GameRules())
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "blackbox.hcl")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "corners", cfg.DefaultLayout)
}

func TestRandomLayout(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte(sample), "sample.hcl")
	require.NoError(t, err)
	l, err := cfg.Layout("chaos")
	require.NoError(t, err)

	t.Run("layout seed", func(t *testing.T) {
		a, seed, err := l.Resolve(nil, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(1234), seed)
		assert.Len(t, a, 6)

		b, _, err := l.Resolve(nil, nil)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("explicit seed wins", func(t *testing.T) {
		seed := int64(7)
		_, used, err := l.Resolve(&seed, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(7), used)
	})

	t.Run("clock seed", func(t *testing.T) {
		unseeded := LayoutConfig{Name: "r", Random: 3}
		clock := quartz.NewMock(t)
		at := time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)
		clock.Set(at)

		atoms, used, err := unseeded.Resolve(nil, clock)
		require.NoError(t, err)
		assert.Equal(t, at.UnixNano(), used)
		assert.Len(t, atoms, 3)
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "negative cost",
			src:  `rules { border_cost = -1 }`,
			want: "border cost",
		},
		{
			name: "bad log level",
			src:  `log { level = "loud" }`,
			want: "log",
		},
		{
			name: "atom off the grid",
			src:  `layout "x" { atoms = [[3, 12]] }`,
			want: "coordinate out of range",
		},
		{
			name: "duplicate atom",
			src: `layout "x" {
  atoms = [[3, 2], [3, 2]]
}`,
			want: "duplicate atom",
		},
		{
			name: "malformed pair",
			src:  `layout "x" { atoms = [[3]] }`,
			want: "must be [row, col]",
		},
		{
			name: "both atoms and random",
			src: `layout "x" {
  atoms  = [[3, 2]]
  random = 2
}`,
			want: "not both",
		},
		{
			name: "neither atoms nor random",
			src:  `layout "x" {}`,
			want: "needs atoms or random",
		},
		{
			name: "too many random atoms",
			src:  `layout "x" { random = 65 }`,
			want: "at most 64",
		},
		{
			name: "duplicate layout",
			src: `layout "x" { random = 1 }
layout "x" { random = 2 }`,
			want: "more than once",
		},
		{
			name: "unknown default",
			src: `default_layout = "y"
layout "x" { random = 1 }`,
			want: "is not defined",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.src), "test.hcl")
			require.NoError(t, err)
			assert.ErrorContains(t, cfg.Validate(), tt.want)
		})
	}
}

func TestUnknownLayout(t *testing.T) {
	t.Parallel()

	_, err := DefaultConfig().Layout("missing")
	assert.ErrorContains(t, err, "unknown layout")
}
