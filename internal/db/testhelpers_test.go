package db

import (
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/skillgrowth/internal/data"
	"github.com/udisondev/skillgrowth/internal/model"
	"github.com/udisondev/skillgrowth/internal/testutil"
)

// setupTestDB поднимает PostgreSQL testcontainer с применёнными миграциями.
func setupTestDB(tb testing.TB) *pgxpool.Pool {
	tb.Helper()
	return testutil.SetupTestDB(tb)
}

// newTestCharacter собирает персонажа с несколькими изученными скиллами.
func newTestCharacter(tb testing.TB, name string) *model.Character {
	tb.Helper()
	c, err := model.NewCharacter(name, 5, model.RolePlayer)
	require.NoError(tb, err)
	c.Skills().Set(data.SkillStr, 12, 340, 150)
	c.Skills().Set(data.SkillDigging, 3, 999, 80)
	c.Skills().Set(data.SkillResistMagic, 100, 0, 0)
	c.GainSpellStock(414, 7)
	c.LearnAction("swarm")
	c.AddExperience(1234)
	c.AddSleepExperience(55)
	return c
}
