package skill

import (
	"github.com/google/uuid"

	"github.com/udisondev/skillgrowth/internal/data"
)

// SpecialActionThreshold is the skill level a special action unlocks above.
const SpecialActionThreshold = 15

// specialActions maps a gating skill to the actions it unlocks.
var specialActions = []struct {
	skill   data.SkillID
	actions []string
}{
	{data.SkillMagicDevice, []string{"draw_charge", "fill_charge"}},
	{data.SkillFaith, []string{"swarm"}},
}

// GainSpecialActions unlocks the special actions the player has outgrown
// the threshold for. Each action is announced once.
func (e *Engine) GainSpecialActions(c Character) {
	if !c.IsPlayer() {
		return
	}
	for _, sa := range specialActions {
		if c.SkillLevel(sa.skill) <= SpecialActionThreshold {
			continue
		}
		for _, key := range sa.actions {
			if !c.LearnAction(key) {
				continue
			}
			e.presenter.Notify(Notification{
				ID:        uuid.New(),
				Kind:      NotifyActionGained,
				Character: c.Name(),
				Action:    key,
				Color:     ColorOrange,
			})
			e.log.Debug("special action gained", "character", c.Name(), "action", key)
		}
	}
}

// RandomSkill picks an ordinary skill id uniformly from [150, 190).
func (e *Engine) RandomSkill() data.SkillID {
	return data.SkillID(e.rnd.IntN(40) + 150)
}

// RandomAttribute picks one of the eight basic attributes, strength through
// charisma.
func (e *Engine) RandomAttribute() data.SkillID {
	return data.SkillID(e.rnd.IntN(8) + int(data.BasicAttrStart))
}
