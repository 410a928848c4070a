package data

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSkillCatalog(t *testing.T) {
	c, err := LoadSkillCatalog()
	require.NoError(t, err)

	related, ok := c.RelatedAttribute(SkillDigging)
	require.True(t, ok)
	assert.Equal(t, SkillStr, related)

	_, ok = c.RelatedAttribute(SkillStr)
	assert.False(t, ok, "basic attributes relate to nothing")

	assert.Equal(t, "Digging", c.Name(SkillDigging, "en"))
	assert.Equal(t, "採掘", c.Name(SkillDigging, "ja-JP"))
	assert.Equal(t, "#599", c.Name(599, "en"))
	assert.Equal(t, "Draw Charge", c.ActionName("draw_charge", "en"))

	id, ok := c.Lookup("fishing")
	require.True(t, ok)
	assert.Equal(t, SkillFishing, id)

	assert.Len(t, c.IDs(KindResistance), ResistIDEnd-ResistIDStart)
	for _, id := range c.IDs(KindSpell) {
		assert.Positive(t, c.Cost(id), "spell %d must have a cost", id)
	}
}

func TestParseSkillCatalogRejectsCycle(t *testing.T) {
	raw := []byte(`
skills:
  - {id: 10, key: strength, name: Strength, related: 11}
  - {id: 11, key: constitution, name: Constitution, related: 10}
`)
	_, err := ParseSkillCatalog(raw)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCatalogCycle))
}

func TestParseSkillCatalogRejectsUnknownRelation(t *testing.T) {
	raw := []byte(`
skills:
  - {id: 100, key: long_sword, name: Long Sword, related: 10}
`)
	_, err := ParseSkillCatalog(raw)
	assert.ErrorIs(t, err, ErrUnknownSkill)
}

func TestParseSkillCatalogRejectsBadIDs(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"out of range", `skills: [{id: 600, key: x, name: X}]`},
		{"negative", `skills: [{id: -1, key: x, name: X}]`},
		{"duplicate id", `skills: [{id: 10, key: a, name: A}, {id: 10, key: b, name: B}]`},
		{"duplicate key", `skills: [{id: 10, key: a, name: A}, {id: 11, key: a, name: B}]`},
		{"empty key", `skills: [{id: 10, name: A}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSkillCatalog([]byte(tt.raw))
			assert.Error(t, err)
		})
	}
}

func TestSkillIDKind(t *testing.T) {
	tests := []struct {
		id   SkillID
		want Kind
	}{
		{0, KindAttribute},
		{SkillLuck, KindAttribute},
		{49, KindAttribute},
		{50, KindResistance},
		{SkillResistMagic, KindResistance},
		{99, KindResistance},
		{100, KindSkill},
		{399, KindSkill},
		{400, KindSpell},
		{599, KindSpell},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.id.Kind(), "id %d", tt.id)
	}

	assert.True(t, SkillStr.IsBasicAttribute())
	assert.True(t, SkillLuck.IsBasicAttribute())
	assert.False(t, SkillMana.IsBasicAttribute())
	assert.False(t, SkillID(20).IsBasicAttribute())
	assert.Equal(t, 8, SkillSpeed.GrowthBuffIndex())

	assert.True(t, SkillLife.HasFixedGrowth())
	assert.True(t, SkillMana.HasFixedGrowth())
	assert.True(t, SkillLuck.HasFixedGrowth())
	assert.False(t, SkillSpeed.HasFixedGrowth())

	assert.False(t, SkillStr.FeedsCharacterExp())
	assert.True(t, SkillDigging.FeedsCharacterExp())
	assert.True(t, SkillID(400).FeedsCharacterExp())
}
