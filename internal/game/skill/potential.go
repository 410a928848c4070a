package skill

import "github.com/udisondev/skillgrowth/internal/data"

// IncreasePotential applies levels steps of the gain curve, capped at
// data.MaxPotential. Used when levels are lost.
func IncreasePotential(curve PotentialCurve, potential, levels int) int {
	for range levels {
		potential = min(curve.PotentialOnGain(potential), data.MaxPotential)
	}
	return potential
}

// DecreasePotential applies levels steps of the loss curve, floored at
// data.MinPotential. Used when levels are gained.
func DecreasePotential(curve PotentialCurve, potential, levels int) int {
	for range levels {
		potential = max(curve.PotentialOnLoss(potential), data.MinPotential)
	}
	return potential
}

// modifyPotential tops up potential of id by delta without touching level.
func (e *Engine) modifyPotential(c Character, id data.SkillID, delta int) {
	skills := c.Skills()
	rec := skills.Get(id)
	skills.Set(id, rec.BaseLevel, rec.Experience, e.formulas.ModifyPotential(rec.Potential, delta))
}
