package skill

import "github.com/udisondev/skillgrowth/internal/data"

// commonSkills are seeded on every character with a small hint level.
var commonSkills = []struct {
	id   data.SkillID
	hint int
}{
	{100, 4}, // long sword
	{101, 4}, // short sword
	{103, 4}, // blunt
	{102, 4}, // axe
	{104, 4}, // polearm
	{105, 4}, // stave
	{107, 4}, // scythe
	{108, 4}, // bow
	{111, 4}, // throwing
	{109, 4}, // crossbow
	{173, 4}, // evasion
	{data.SkillHealing, 4},
	{data.SkillMeditation, 4},
	{106, 4}, // martial arts
	{data.SkillStealth, 4},
	{181, 4}, // eye of mind
	{171, 4}, // light armor
	{170, 4}, // medium armor
	{169, 4}, // heavy armor
	{168, 3}, // shield
	{data.SkillLuck, 50},
}

// InitSkill seeds skill id on c from the character level and a hint level.
//
// The result is merged additively into the existing record: calling it on a
// partly learned skill raises both level and potential further. Potential
// is capped at data.MaxPotential, level at data.MaxSkillLevel.
func (e *Engine) InitSkill(c Character, id data.SkillID, hint int) {
	skills := c.Skills()
	rec := skills.Get(id)
	charaLevel := c.Level()

	// 1. Seed potential and level.
	potential := e.formulas.InitialBasePotential(id, rec.BaseLevel, hint)
	var level int
	if id == data.SkillSpeed {
		level = e.formulas.InitialSpeedLevel(hint, charaLevel)
	} else {
		level = e.formulas.InitialLevel(hint, charaLevel, potential)
	}

	// 2. Older characters start with less room to grow.
	potential = max(e.formulas.DecayedPotential(charaLevel, potential), 1)

	// 3. Life, mana and luck scale linearly with the hint.
	if id.HasFixedGrowth() {
		level = hint
		potential = 100
	}

	if rec.BaseLevel+level > data.MaxSkillLevel {
		level = data.MaxSkillLevel - rec.BaseLevel
	}
	level = clamp(level, 0, data.MaxSkillLevel)

	skills.Set(id, rec.BaseLevel+level, rec.Experience, min(rec.Potential+potential, data.MaxPotential))
}

// InitCommonSkills seeds resistances and the skills every character knows.
// Resistances have no potential: they are set to a level with zero
// potential and never grow through experience.
func (e *Engine) InitCommonSkills(c Character) {
	skills := c.Skills()
	for _, id := range data.ResistanceIDs() {
		level := e.formulas.ResistanceLevel(c.IsPlayer(), c.Level(), c.SkillLevel(id))
		skills.Set(id, clamp(level, 1, data.MaxSkillLevel), 0, 0)
	}

	for _, s := range commonSkills {
		e.InitSkill(c, s.id, s.hint)
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
