package main

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/skillgrowth/internal/data"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"loud", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLogLevel(tt.in))
		})
	}
}

func TestLookup(t *testing.T) {
	catalog, err := data.LoadSkillCatalog()
	require.NoError(t, err)

	id, err := lookup(catalog, "")
	require.NoError(t, err)
	assert.Zero(t, id)

	id, err = lookup(catalog, "digging")
	require.NoError(t, err)
	assert.Equal(t, data.SkillDigging, id)

	_, err = lookup(catalog, "juggling")
	assert.ErrorIs(t, err, data.ErrUnknownSkill)
}

func TestRootCommandTree(t *testing.T) {
	root := newRootCmd()

	for _, name := range []string{"simulate", "migrate", "train"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}
	assert.NotNil(t, root.PersistentFlags().Lookup("config"))
}
