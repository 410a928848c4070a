package skill

import (
	"fmt"
	"sort"

	"github.com/udisondev/skillgrowth/internal/data"
)

// Trigger is a gameplay event that trains one or more skills.
type Trigger uint8

const (
	TriggerDigging Trigger = iota + 1
	TriggerLiteracy
	TriggerNegotiation
	TriggerLockPicking
	TriggerDetection
	TriggerCasting
	TriggerManaCapacity
	TriggerHealing
	TriggerStealth
	TriggerInvesting
	TriggerWeightLifting
	TriggerMagicDevice
	TriggerFishing
	TriggerMemorization
	TriggerCrafting
	TriggerDisarmTrap
)

var triggerNames = map[Trigger]string{
	TriggerDigging:       "digging",
	TriggerLiteracy:      "literacy",
	TriggerNegotiation:   "negotiation",
	TriggerLockPicking:   "lock_picking",
	TriggerDetection:     "detection",
	TriggerCasting:       "casting",
	TriggerManaCapacity:  "mana_capacity",
	TriggerHealing:       "healing",
	TriggerStealth:       "stealth",
	TriggerInvesting:     "investing",
	TriggerWeightLifting: "weight_lifting",
	TriggerMagicDevice:   "magic_device",
	TriggerFishing:       "fishing",
	TriggerMemorization:  "memorization",
	TriggerCrafting:      "crafting",
	TriggerDisarmTrap:    "disarm_trap",
}

func (t Trigger) String() string {
	if name, ok := triggerNames[t]; ok {
		return name
	}
	return fmt.Sprintf("trigger(%d)", uint8(t))
}

// ParseTrigger resolves a trigger by name.
func ParseTrigger(name string) (Trigger, error) {
	for t, n := range triggerNames {
		if n == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown trigger %q", name)
}

// Triggers returns all triggers in declaration order.
func Triggers() []Trigger {
	ts := make([]Trigger, 0, len(triggerNames))
	for t := range triggerNames {
		ts = append(ts, t)
	}
	sort.Slice(ts, func(i, j int) bool { return ts[i] < ts[j] })
	return ts
}

// Event carries the parameters of a trigger occurrence.
type Event struct {
	Trigger   Trigger
	Gold      int          // negotiation: value of the deal
	Spell     data.SkillID // casting, memorization
	Skill     data.SkillID // crafting: the craft skill used
	Materials int          // crafting: materials consumed
}

// gainRule binds a trigger to one skill grant.
type gainRule struct {
	skill        func(ev Event) data.SkillID
	amount       func(e *Engine, c Character, ev Event) int
	gate         func(e *Engine, c Character, ev Event) bool
	attrDivisor  int
	levelDivisor int
	playerOnly   bool
}

func fixedSkill(id data.SkillID) func(Event) data.SkillID {
	return func(Event) data.SkillID { return id }
}

func fixedAmount(n int) func(*Engine, Character, Event) int {
	return func(*Engine, Character, Event) int { return n }
}

// gainRules: таблица триггеров, какой скилл, сколько опыта, какие делители.
// Rules of one trigger apply in order.
var gainRules = map[Trigger][]gainRule{
	TriggerDigging: {{
		skill:  fixedSkill(data.SkillDigging),
		amount: fixedAmount(100),
	}},
	TriggerLiteracy: {{
		skill:        fixedSkill(data.SkillLiteracy),
		amount:       fixedAmount(15),
		attrDivisor:  10,
		levelDivisor: 100,
	}},
	TriggerNegotiation: {{
		skill: fixedSkill(data.SkillNegotiation),
		gate: func(e *Engine, c Character, ev Event) bool {
			return ev.Gold >= e.formulas.NegotiationGoldThreshold(c.SkillLevel(data.SkillNegotiation))
		},
		amount: func(e *Engine, c Character, ev Event) int {
			return e.formulas.NegotiationExp(ev.Gold, c.SkillLevel(data.SkillNegotiation))
		},
		attrDivisor: 10,
	}},
	TriggerLockPicking: {{
		skill:  fixedSkill(data.SkillLockPicking),
		amount: fixedAmount(100),
	}},
	TriggerDetection: {{
		skill: fixedSkill(data.SkillDetection),
		amount: func(e *Engine, _ Character, _ Event) int {
			return e.formulas.DetectionExp(e.env.DungeonLevel())
		},
	}},
	TriggerCasting: {
		{
			skill: func(ev Event) data.SkillID { return ev.Spell },
			amount: func(e *Engine, _ Character, ev Event) int {
				return e.formulas.SpellExp(e.catalog.Cost(ev.Spell))
			},
			attrDivisor:  4,
			levelDivisor: 5,
			playerOnly:   true,
		},
		{
			skill: fixedSkill(data.SkillCasting),
			amount: func(e *Engine, _ Character, ev Event) int {
				return e.formulas.CastingExp(e.catalog.Cost(ev.Spell))
			},
			attrDivisor: 5,
		},
	},
	TriggerManaCapacity: {{
		skill: fixedSkill(data.SkillManaCapacity),
		amount: func(e *Engine, c Character, _ Event) int {
			v := c.Vitals()
			return e.formulas.ManaCapacityExp(v.MP, v.MaxMP)
		},
	}},
	TriggerHealing: {
		{
			skill: fixedSkill(data.SkillHealing),
			amount: func(e *Engine, c Character, _ Event) int {
				v := c.Vitals()
				return e.formulas.HealingExp(v.HP, v.MaxHP)
			},
			attrDivisor: DefaultDivisor,
		},
		{
			skill: fixedSkill(data.SkillMeditation),
			amount: func(e *Engine, c Character, _ Event) int {
				v := c.Vitals()
				return e.formulas.MeditationExp(v.MP, v.MaxMP)
			},
			attrDivisor: DefaultDivisor,
		},
	},
	TriggerStealth: {{
		skill: fixedSkill(data.SkillStealth),
		amount: func(e *Engine, _ Character, _ Event) int {
			return e.formulas.StealthExp(e.env.IsOverworld())
		},
		levelDivisor: DefaultDivisor,
	}},
	TriggerInvesting: {{
		skill:  fixedSkill(data.SkillInvesting),
		amount: fixedAmount(600),
	}},
	TriggerWeightLifting: {{
		skill: fixedSkill(data.SkillWeightLifting),
		amount: func(e *Engine, c Character, _ Event) int {
			v := c.Vitals()
			return e.formulas.WeightLiftingExp(v.Weight, v.MaxWeight)
		},
		levelDivisor: DefaultDivisor,
	}},
	TriggerMagicDevice: {{
		skill:      fixedSkill(data.SkillMagicDevice),
		amount:     fixedAmount(40),
		playerOnly: true,
	}},
	TriggerFishing: {{
		skill:  fixedSkill(data.SkillFishing),
		amount: fixedAmount(100),
	}},
	TriggerMemorization: {{
		skill: fixedSkill(data.SkillMemorization),
		amount: func(e *Engine, _ Character, ev Event) int {
			return e.formulas.MemorizationExp(e.catalog.Difficulty(ev.Spell))
		},
	}},
	TriggerCrafting: {{
		skill: func(ev Event) data.SkillID { return ev.Skill },
		amount: func(e *Engine, _ Character, ev Event) int {
			return e.formulas.CraftingExp(ev.Materials)
		},
	}},
	TriggerDisarmTrap: {{
		skill:  fixedSkill(data.SkillDisarmTrap),
		amount: fixedAmount(50),
	}},
}

// Gain applies every rule bound to ev.Trigger.
// Panics on an unknown trigger.
func (e *Engine) Gain(c Character, ev Event) {
	rules, ok := gainRules[ev.Trigger]
	if !ok {
		panic(fmt.Sprintf("skill: no gain rules for %v", ev.Trigger))
	}
	for _, r := range rules {
		if r.playerOnly && !c.IsPlayer() {
			continue
		}
		if r.gate != nil && !r.gate(e, c, ev) {
			continue
		}
		e.GainSkillExpScaled(c, r.skill(ev), r.amount(e, c, ev), r.attrDivisor, r.levelDivisor)
	}
}
