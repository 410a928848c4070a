package skill

import (
	"github.com/udisondev/skillgrowth/internal/data"
	"github.com/udisondev/skillgrowth/internal/model"
)

// GainSkillExp grants raw experience to skill id with default divisors:
// related attributes receive a small share and no character experience is
// siphoned.
func (e *Engine) GainSkillExp(c Character, id data.SkillID, exp int) {
	e.GainSkillExpScaled(c, id, exp, DefaultDivisor, DefaultDivisor)
}

// GainSkillExpScaled grants raw experience to skill id.
//
// attrDivisor scales the share forwarded to the related basic attribute.
// levelDivisor other than DefaultDivisor opts into converting part of the
// gain into character experience (ordinary skills and spells only).
//
// Negative exp bypasses conversion and can drop levels, never below 1.
// Unlearned skills, zero exp and zero potential are no-ops.
func (e *Engine) GainSkillExpScaled(c Character, id data.SkillID, exp, attrDivisor, levelDivisor int) {
	e.gainSkillExp(c, id, exp, attrDivisor, levelDivisor, nil)
}

func (e *Engine) gainSkillExp(c Character, id data.SkillID, exp, attrDivisor, levelDivisor int, chain []data.SkillID) {
	skills := c.Skills()
	if !skills.Get(id).Learned() || exp == 0 {
		return
	}

	// 1. Train the related basic attribute alongside.
	if attr, ok := e.catalog.RelatedAttribute(id); ok {
		e.propagate(c, id, attr, e.formulas.RelatedAttributeExp(exp, attrDivisor), chain)
	}

	// 2. Re-read: zero potential disables growth.
	rec := skills.Get(id)
	if rec.Potential == 0 {
		return
	}

	// 3. Convert raw experience.
	amount, ok := e.convertExp(c, id, rec, exp)
	if !ok {
		return
	}
	if e.env.IsLowYieldArea() {
		amount /= LowYieldDivisor
	}

	// 4. Siphon into the character experience pool.
	if amount > 0 && id.FeedsCharacterExp() && levelDivisor != DefaultDivisor {
		charaExp := e.formulas.CharaExpFromSkillExp(c.RequiredExperience(), c.Level(), amount, levelDivisor)
		c.AddExperience(charaExp)
		if c.IsPlayer() {
			c.AddSleepExperience(charaExp)
		}
	}

	// 5. Resolve level transitions.
	e.applyExp(c, id, rec, rec.Experience+amount, true)
}

// propagate forwards exp to the related attribute of id, refusing chains
// that revisit a skill or exceed the depth limit.
func (e *Engine) propagate(c Character, id, attr data.SkillID, exp int, chain []data.SkillID) {
	chain = append(chain, id)
	for _, seen := range chain {
		if seen == attr {
			e.log.Warn("related attribute cycle, skipping propagation",
				"skill", id, "attribute", attr, "chain", chain)
			return
		}
	}
	if len(chain) > e.maxDepth {
		e.log.Warn("related attribute chain too deep, skipping propagation",
			"skill", id, "attribute", attr, "depth", len(chain), "max_depth", e.maxDepth)
		return
	}
	e.gainSkillExp(c, attr, exp, DefaultDivisor, DefaultDivisor, chain)
}

// convertExp turns positive raw experience into skill experience.
// Returns false when the gain is lost to attrition.
func (e *Engine) convertExp(c Character, id data.SkillID, rec model.SkillRecord, exp int) (int, bool) {
	if exp <= 0 {
		return exp, true
	}

	amount := e.formulas.BaseExpGained(exp, rec.Potential, rec.BaseLevel)
	if id.IsBasicAttribute() {
		amount = e.formulas.BoostedExpGained(amount, c.GrowthBuff(id))
	}
	if amount == 0 {
		if e.rnd.IntN(rec.BaseLevel/10+1) != 0 {
			return 0, false
		}
		amount = 1
	}
	return amount, true
}

// GainFixedSkillExp adds exp to skill id as is: no attribute propagation,
// no conversion and no character experience.
func (e *Engine) GainFixedSkillExp(c Character, id data.SkillID, exp int) {
	rec := c.Skills().Get(id)
	if !rec.Learned() || rec.Potential == 0 || exp == 0 {
		return
	}
	e.applyExp(c, id, rec, rec.Experience+exp, false)
}

// applyExp commits newExp to rec, promoting or demoting as many levels as
// it crosses. alert requests an input halt on visible level changes.
func (e *Engine) applyExp(c Character, id data.SkillID, rec model.SkillRecord, newExp int, alert bool) {
	skills := c.Skills()

	switch {
	case newExp >= data.ExpPerLevel:
		gained := newExp / data.ExpPerLevel
		newExp %= data.ExpPerLevel
		level := rec.BaseLevel + gained
		potential := DecreasePotential(e.formulas, rec.Potential, gained)
		skills.Set(id, level, newExp, potential)

		if e.visibility.IsVisible(c) {
			color := ColorDefault
			if c.IsPlayerOrAlly() {
				e.presenter.PlaySound(SoundSkillUp)
				color = ColorGreen
				if alert {
					e.presenter.HaltInput()
				}
			}
			e.notify(c, NotifySkillUp, id, skills.Get(id).BaseLevel, gained, color)
		}
		e.log.Debug("skill level up",
			"character", c.Name(), "skill", id, "from", rec.BaseLevel, "levels", gained, "potential", potential)
		c.Refresh()

	case newExp < 0:
		lost := -floorDiv(newExp, data.ExpPerLevel)
		newExp = floorMod(newExp, data.ExpPerLevel)
		if rec.BaseLevel-lost < 1 {
			lost = rec.BaseLevel - 1
			if lost == 0 {
				newExp = 0
			}
		}
		level := rec.BaseLevel - lost
		potential := IncreasePotential(e.formulas, rec.Potential, lost)
		skills.Set(id, level, newExp, potential)

		if lost != 0 && c.IsPlayerOrAlly() && e.visibility.IsVisible(c) {
			if alert {
				e.presenter.HaltInput()
			}
			e.notify(c, NotifySkillDown, id, level, lost, ColorRed)
		}
		e.log.Debug("skill level down",
			"character", c.Name(), "skill", id, "from", rec.BaseLevel, "levels", lost, "potential", potential)
		c.Refresh()

	default:
		skills.Set(id, rec.BaseLevel, newExp, rec.Potential)
	}
}

// floorDiv and floorMod round toward negative infinity, so that
// floorMod(x, n) is always in [0, n).
func floorDiv(x, n int) int {
	q := x / n
	if x%n != 0 && (x < 0) != (n < 0) {
		q--
	}
	return q
}

func floorMod(x, n int) int {
	return x - floorDiv(x, n)*n
}
