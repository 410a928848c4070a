// Package formula holds the numeric curves behind skill growth.
// All functions are pure functions of small integers.
package formula

import (
	"math"

	"github.com/udisondev/skillgrowth/internal/data"
)

// Default implements the standard growth curves.
type Default struct{}

// PotentialOnGain returns potential after one level is lost.
func (Default) PotentialOnGain(potential int) int {
	return potential*110/100 + 1
}

// PotentialOnLoss returns potential after one level is gained.
func (Default) PotentialOnLoss(potential int) int {
	return potential * 90 / 100
}

// ModifyPotential applies a flat top-up, keeping the result in range.
func (Default) ModifyPotential(potential, delta int) int {
	return clamp(potential+delta, data.MinPotential, data.MaxPotential)
}

// InitialBasePotential returns the seed potential of a new skill.
func (Default) InitialBasePotential(id data.SkillID, baseLevel, hint int) int {
	if id >= data.SkillIDStart {
		p := hint * 5
		if baseLevel == 0 {
			p += 50
		}
		return p
	}
	return min(hint*20, data.MaxPotential)
}

// InitialLevel returns the seed level of a new skill.
func (Default) InitialLevel(hint, charaLevel, potential int) int {
	return potential*potential*charaLevel/45000 + hint + charaLevel/3
}

// InitialSpeedLevel returns the seed level of the speed attribute.
func (Default) InitialSpeedLevel(hint, charaLevel int) int {
	return hint * (100 + charaLevel*2) / 100
}

// DecayedPotential shrinks a seed potential by 10% per character level.
func (Default) DecayedPotential(charaLevel, potential int) int {
	if charaLevel <= 1 {
		return potential
	}
	return int(math.Pow(0.9, float64(charaLevel)) * float64(potential))
}

// ResistanceLevel returns the initial level of an elemental resistance.
func (Default) ResistanceLevel(isPlayer bool, charaLevel, currentLevel int) int {
	base := 100
	if !isPlayer {
		base = min(charaLevel*4+96, 300)
	}
	return base + currentLevel
}

// BaseExpGained converts raw experience into skill experience.
func (Default) BaseExpGained(exp, potential, skillLevel int) int {
	return exp * potential / (100 + skillLevel*15)
}

// BoostedExpGained applies an attribute growth buff in percent.
func (Default) BoostedExpGained(exp, growthBuff int) int {
	return exp * (100 + growthBuff) / 100
}

// RelatedAttributeExp scales experience forwarded to a related attribute.
func (Default) RelatedAttributeExp(exp, divisor int) int {
	return exp / (2 + divisor)
}

// CharaExpFromSkillExp returns character experience siphoned from a skill gain.
func (Default) CharaExpFromSkillExp(required int64, charaLevel, exp, divisor int) int64 {
	d := int64(charaLevel + divisor)
	if d <= 0 {
		d = 1
	}
	return required * int64(exp) / 1000 / d
}

// NegotiationGoldThreshold returns the smallest deal that trains negotiation.
func (Default) NegotiationGoldThreshold(level int) int {
	return (level + 10) * (level + 10)
}

// NegotiationExp returns experience for a deal worth gold.
func (Default) NegotiationExp(gold, level int) int {
	return clamp(gold/(level+10), 1, 100)
}

// DetectionExp returns experience for spotting something at dungeonLevel.
func (Default) DetectionExp(dungeonLevel int) int {
	return dungeonLevel*2 + 20
}

// CastingExp returns casting skill experience for a spell of the given cost.
func (Default) CastingExp(cost int) int {
	return cost + 10
}

// SpellExp returns experience the cast spell itself receives.
func (Default) SpellExp(cost int) int {
	return cost*4 + 20
}

// ManaCapacityExp returns experience for overdrawing mana.
func (Default) ManaCapacityExp(mp, maxMP int) int {
	if mp < 0 {
		mp = -mp
	}
	return mp * 200 / (maxMP + 1)
}

// HealingExp returns experience for regenerating missing HP.
func (Default) HealingExp(hp, maxHP int) int {
	return recoveryExp(hp, maxHP)
}

// MeditationExp returns experience for regenerating missing MP.
func (Default) MeditationExp(mp, maxMP int) int {
	return recoveryExp(mp, maxMP)
}

// StealthExp returns experience for moving unseen.
func (Default) StealthExp(overworld bool) int {
	if overworld {
		return 20
	}
	return 2
}

// WeightLiftingExp returns experience for carrying a heavy load.
func (Default) WeightLiftingExp(weight, maxWeight int) int {
	if weight <= maxWeight/2 {
		return 0
	}
	return clamp(weight*50/(maxWeight+1), 0, 50)
}

// MemorizationExp returns experience for memorizing a spell of the given difficulty.
func (Default) MemorizationExp(difficulty int) int {
	return 10 + difficulty/5
}

// CraftingExp returns experience for a craft consuming materials.
func (Default) CraftingExp(materials int) int {
	return 50 + materials*20
}

func recoveryExp(cur, maxValue int) int {
	missing := maxValue - cur
	if missing <= 0 {
		return 0
	}
	return 5 + missing*20/(maxValue+1)
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
