package skill

import "github.com/udisondev/skillgrowth/internal/data"

// Potential top-ups applied by GainSkill.
const (
	PotentialSpellStock   = 1   // every spell stock the player gains
	PotentialRelearnSkill = 20  // learning an ordinary skill already known
	PotentialNewSkill     = 50  // first acquisition of an ordinary skill
	PotentialNewSpell     = 200 // first acquisition of a spell
)

// GainSkill teaches skill id to c.
//
// For the player, spells also add stock casts. A skill that is already
// learned never changes level: ordinary skills get a small potential top-up,
// spells nothing beyond the stock. A new skill gets a larger top-up and
// starts at initialLevel (at least 1).
func (e *Engine) GainSkill(c Character, id data.SkillID, initialLevel, stock int) {
	skills := c.Skills()
	if id.IsSpell() && c.IsPlayer() {
		c.GainSpellStock(id, stock)
		e.modifyPotential(c, id, PotentialSpellStock)
	}

	if skills.Get(id).Learned() {
		if !id.IsSpell() {
			e.modifyPotential(c, id, PotentialRelearnSkill)
		}
		return
	}

	if id.IsSpell() {
		e.modifyPotential(c, id, PotentialNewSpell)
	} else {
		e.modifyPotential(c, id, PotentialNewSkill)
	}
	rec := skills.Get(id)
	skills.Set(id, clamp(rec.BaseLevel+initialLevel, 1, data.MaxSkillLevel), rec.Experience, rec.Potential)

	c.Refresh()
}
