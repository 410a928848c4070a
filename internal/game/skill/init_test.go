package skill

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/udisondev/skillgrowth/internal/data"
	"github.com/udisondev/skillgrowth/internal/model"
)

func TestInitSkill(t *testing.T) {
	tests := []struct {
		name string
		id   data.SkillID
		hint int
		want model.SkillRecord
	}{
		// potential 4*5+50 = 70, level 70*70/45000 + 4 = 4
		{"ordinary skill", 100, 4, model.SkillRecord{BaseLevel: 4, Potential: 70}},
		// 10*(100+2)/100 = 10, potential min(10*20, 400)
		{"speed", data.SkillSpeed, 10, model.SkillRecord{BaseLevel: 10, Potential: 200}},
		{"life is linear", data.SkillLife, 7, model.SkillRecord{BaseLevel: 7, Potential: 100}},
		{"luck is linear", data.SkillLuck, 50, model.SkillRecord{BaseLevel: 50, Potential: 100}},
		// potential min(30*20, 400), level 400*400/45000 + 30 = 33
		{"attribute", data.SkillStr, 30, model.SkillRecord{BaseLevel: 33, Potential: 400}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestEngine(t, Deps{})
			c := newTestCharacter(t, 1, model.RolePlayer)

			e.InitSkill(c, tt.id, tt.hint)

			assert.Equal(t, tt.want, c.Skills().Get(tt.id))
		})
	}
}

func TestInitSkillIsAdditive(t *testing.T) {
	e, _ := newTestEngine(t, Deps{})
	c := newTestCharacter(t, 1, model.RolePlayer)

	e.InitSkill(c, 100, 4)
	e.InitSkill(c, 100, 4)

	// Second seed: potential 4*5 = 20 (no fresh-skill bonus), level 4.
	assert.Equal(t, model.SkillRecord{BaseLevel: 8, Potential: 90}, c.Skills().Get(100))
}

func TestInitSkillClamps(t *testing.T) {
	e, _ := newTestEngine(t, Deps{})
	c := newTestCharacter(t, 1, model.RolePlayer)
	c.Skills().Set(100, data.MaxSkillLevel-2, 500, 390)

	e.InitSkill(c, 100, 4)

	rec := c.Skills().Get(100)
	assert.Equal(t, data.MaxSkillLevel, rec.BaseLevel)
	assert.Equal(t, 500, rec.Experience)
	assert.Equal(t, data.MaxPotential, rec.Potential)
}

func TestInitSkillDecaysWithCharacterLevel(t *testing.T) {
	e, _ := newTestEngine(t, Deps{})
	young := newTestCharacter(t, 1, model.RolePlayer)
	old := newTestCharacter(t, 30, model.RolePlayer)

	e.InitSkill(young, 100, 4)
	e.InitSkill(old, 100, 4)

	assert.Less(t, old.Skills().Get(100).Potential, young.Skills().Get(100).Potential)
	assert.Greater(t, old.Skills().Get(100).BaseLevel, young.Skills().Get(100).BaseLevel)
	assert.GreaterOrEqual(t, old.Skills().Get(100).Potential, data.MinPotential)
}

func TestInitCommonSkills(t *testing.T) {
	tests := []struct {
		name       string
		role       model.Role
		level      int
		wantResist int
	}{
		{"player", model.RolePlayer, 1, 100},
		{"low level monster", model.RoleOther, 1, 100},
		{"high level monster", model.RoleOther, 80, 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestEngine(t, Deps{})
			c := newTestCharacter(t, tt.level, tt.role)

			e.InitCommonSkills(c)

			for _, id := range data.ResistanceIDs() {
				assert.Equal(t, model.SkillRecord{BaseLevel: tt.wantResist}, c.Skills().Get(id), "resistance %d", id)
			}
			for _, s := range commonSkills {
				assert.True(t, c.Skills().Get(s.id).Learned(), "skill %d", s.id)
			}
			assert.Equal(t, 50, c.Skills().Get(data.SkillLuck).BaseLevel)
			assert.Equal(t, 100, c.Skills().Get(data.SkillLuck).Potential)
		})
	}
}

func TestResistancesDoNotGrow(t *testing.T) {
	e, _ := newTestEngine(t, Deps{})
	c := newTestCharacter(t, 1, model.RolePlayer)
	e.InitCommonSkills(c)

	before := c.Skills().Get(data.SkillResistMagic)
	e.GainSkillExp(c, data.SkillResistMagic, 5000)
	e.GainFixedSkillExp(c, data.SkillResistMagic, 5000)

	assert.Equal(t, before, c.Skills().Get(data.SkillResistMagic))
}
