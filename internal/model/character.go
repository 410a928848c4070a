package model

import (
	"fmt"
	"sort"

	"github.com/udisondev/skillgrowth/internal/data"
)

// Role determines how level changes are presented to the user.
type Role uint8

const (
	RoleOther Role = iota
	RolePlayer
	RoleAlly
)

// StatRefresher recomputes derived stats after a level change.
// Interface to avoid import cycle between model ↔ stat pipeline.
type StatRefresher interface {
	Refresh(c *Character)
}

// Vitals holds the raw resource pools some growth triggers read.
type Vitals struct {
	HP        int
	MaxHP     int
	MP        int
	MaxMP     int
	Weight    int // carried inventory weight
	MaxWeight int // weight the character carries without burden
}

// Character владеет таблицей скиллов.
// Не потокобезопасен: персонаж принадлежит одной горутине симуляции.
type Character struct {
	name            string
	role            Role
	level           int
	experience      int64
	sleepExperience int64

	skills     *SkillTable
	skillBonus [data.MaxSkillID]int

	// Indexed by SkillID.GrowthBuffIndex (STR..LUCK).
	growthBuffs [data.BasicAttrEnd - data.BasicAttrStart]int

	// Indexed by spell id - data.SpellIDStart.
	spellStocks [data.MaxSkillID - data.SpellIDStart]int

	specialActions map[string]bool
	vitals         Vitals

	refresher    StatRefresher
	refreshCount int
}

// NewCharacter создаёт персонажа с пустой таблицей скиллов.
func NewCharacter(name string, level int, role Role) (*Character, error) {
	if name == "" {
		return nil, fmt.Errorf("name must not be empty")
	}
	if level < 1 || level > data.MaxCurveLevel {
		return nil, fmt.Errorf("level must be between 1 and %d, got %d", data.MaxCurveLevel, level)
	}
	return &Character{
		name:           name,
		role:           role,
		level:          level,
		skills:         NewSkillTable(),
		specialActions: make(map[string]bool),
	}, nil
}

// Name returns the display name.
func (c *Character) Name() string { return c.name }

// Role returns the presentation role.
func (c *Character) Role() Role { return c.role }

// IsPlayer reports whether c is the player-controlled character.
func (c *Character) IsPlayer() bool { return c.role == RolePlayer }

// IsPlayerOrAlly reports whether c is the player or one of its allies.
func (c *Character) IsPlayerOrAlly() bool { return c.role == RolePlayer || c.role == RoleAlly }

// Level returns the character level.
func (c *Character) Level() int { return c.level }

// Experience returns experience accumulated toward the next character level.
func (c *Character) Experience() int64 { return c.experience }

// AddExperience adds to the character experience pool.
func (c *Character) AddExperience(exp int64) {
	c.experience += exp
	if c.experience < 0 {
		c.experience = 0
	}
}

// SetProgress restores level and experience pools (used when loading).
func (c *Character) SetProgress(level int, experience, sleepExperience int64) error {
	if level < 1 || level > data.MaxCurveLevel {
		return fmt.Errorf("level must be between 1 and %d, got %d", data.MaxCurveLevel, level)
	}
	c.level = level
	c.experience = max(experience, 0)
	c.sleepExperience = sleepExperience
	return nil
}

// SleepExperience returns experience banked for the next rest.
func (c *Character) SleepExperience() int64 { return c.sleepExperience }

// AddSleepExperience banks experience applied on the next rest.
func (c *Character) AddSleepExperience(exp int64) {
	c.sleepExperience += exp
}

// RequiredExperience returns the experience needed for the next character level.
func (c *Character) RequiredExperience() int64 {
	return data.RequiredExperience(c.level)
}

// ApplyExperience converts accumulated experience into character levels.
// Returns the number of levels gained.
func (c *Character) ApplyExperience() int {
	level, rest := data.GetLevelForExp(c.experience, c.level)
	gained := level - c.level
	c.level = level
	c.experience = rest
	if gained > 0 {
		c.Refresh()
	}
	return gained
}

// Skills returns the character's skill table.
func (c *Character) Skills() *SkillTable { return c.skills }

// SetSkills replaces the skill table (used when loading from storage).
func (c *Character) SetSkills(t *SkillTable) {
	if t == nil {
		t = NewSkillTable()
	}
	c.skills = t
}

// SkillLevel returns the effective level of id: base level plus bonus.
func (c *Character) SkillLevel(id data.SkillID) int {
	return c.skills.Get(id).BaseLevel + c.skillBonus[id]
}

// SetSkillBonus sets the transient modifier applied on top of the base level.
func (c *Character) SetSkillBonus(id data.SkillID, bonus int) {
	c.skillBonus[mustIndex(id)] = bonus
}

// GrowthBuff returns the growth buff percentage for a basic attribute.
// Returns 0 for ids outside STR..LUCK.
func (c *Character) GrowthBuff(id data.SkillID) int {
	if !id.IsBasicAttribute() {
		return 0
	}
	return c.growthBuffs[id.GrowthBuffIndex()]
}

// SetGrowthBuff sets the growth buff percentage for a basic attribute.
func (c *Character) SetGrowthBuff(id data.SkillID, percent int) {
	if !id.IsBasicAttribute() {
		return
	}
	c.growthBuffs[id.GrowthBuffIndex()] = percent
}

// SpellStock returns how many casts of a spell are stocked.
func (c *Character) SpellStock(id data.SkillID) int {
	if !id.IsSpell() || !id.Valid() {
		return 0
	}
	return c.spellStocks[id-data.SpellIDStart]
}

// GainSpellStock adds n stocked casts of spell id.
func (c *Character) GainSpellStock(id data.SkillID, n int) {
	if !id.IsSpell() || !id.Valid() {
		return
	}
	c.spellStocks[id-data.SpellIDStart] += n
}

// SetSpellStock overwrites the stock of spell id (used when loading).
func (c *Character) SetSpellStock(id data.SkillID, n int) {
	if !id.IsSpell() || !id.Valid() {
		return
	}
	c.spellStocks[id-data.SpellIDStart] = n
}

// EachSpellStock calls fn for every spell with a non-zero stock.
func (c *Character) EachSpellStock(fn func(id data.SkillID, n int)) {
	for i, n := range c.spellStocks {
		if n != 0 {
			fn(data.SkillID(i)+data.SpellIDStart, n)
		}
	}
}

// LearnAction marks a special action as learned.
// Returns false if it was already known.
func (c *Character) LearnAction(key string) bool {
	if c.specialActions[key] {
		return false
	}
	c.specialActions[key] = true
	return true
}

// HasAction reports whether a special action is learned.
func (c *Character) HasAction(key string) bool {
	return c.specialActions[key]
}

// Actions returns learned special actions in key order.
func (c *Character) Actions() []string {
	keys := make([]string, 0, len(c.specialActions))
	for k := range c.specialActions {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Vitals returns the resource pools.
func (c *Character) Vitals() Vitals { return c.vitals }

// SetVitals replaces the resource pools.
func (c *Character) SetVitals(v Vitals) { c.vitals = v }

// SetStatRefresher sets the derived-stat pipeline invoked by Refresh.
func (c *Character) SetStatRefresher(r StatRefresher) { c.refresher = r }

// Refresh triggers derived-stat recomputation.
func (c *Character) Refresh() {
	c.refreshCount++
	if c.refresher != nil {
		c.refresher.Refresh(c)
	}
}

// RefreshCount returns how many times Refresh ran.
func (c *Character) RefreshCount() int { return c.refreshCount }
