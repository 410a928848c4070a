// Package skill implements skill progression: initialization, acquisition,
// experience gain and the level transitions it causes.
//
// All operations are synchronous and run on the goroutine that owns the
// character. No operation returns an error; invalid skill ids panic inside
// the skill table and out-of-range values are clamped.
package skill

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/udisondev/skillgrowth/internal/data"
	"github.com/udisondev/skillgrowth/internal/game/formula"
	"github.com/udisondev/skillgrowth/internal/model"
)

// DefaultDivisor is the divisor passed when a caller does not scale
// related-attribute experience or opt into the character experience siphon.
const DefaultDivisor = 1000

// DefaultMaxPropagationDepth bounds related-attribute recursion.
const DefaultMaxPropagationDepth = 4

// LowYieldDivisor divides gains earned in low-yield areas.
const LowYieldDivisor = 5

// SoundSkillUp is the cue played when a visible ally gains a level.
const SoundSkillUp = "ding3"

// Character is the owner of a skill table as seen by the engine.
// *model.Character implements it.
type Character interface {
	Name() string
	Level() int
	IsPlayer() bool
	IsPlayerOrAlly() bool
	Skills() *model.SkillTable
	SkillLevel(id data.SkillID) int
	GrowthBuff(id data.SkillID) int
	RequiredExperience() int64
	AddExperience(exp int64)
	AddSleepExperience(exp int64)
	GainSpellStock(id data.SkillID, n int)
	LearnAction(key string) bool
	Vitals() model.Vitals
	Refresh()
}

// Catalog provides skill metadata.
type Catalog interface {
	RelatedAttribute(id data.SkillID) (data.SkillID, bool)
	Cost(id data.SkillID) int
	Difficulty(id data.SkillID) int
}

// PotentialCurve is a single step of potential growth or decay.
type PotentialCurve interface {
	PotentialOnGain(potential int) int
	PotentialOnLoss(potential int) int
}

// Formulas is the numeric library the engine consults.
// formula.Default implements it.
type Formulas interface {
	PotentialCurve
	ModifyPotential(potential, delta int) int
	InitialBasePotential(id data.SkillID, baseLevel, hint int) int
	InitialLevel(hint, charaLevel, potential int) int
	InitialSpeedLevel(hint, charaLevel int) int
	DecayedPotential(charaLevel, potential int) int
	ResistanceLevel(isPlayer bool, charaLevel, currentLevel int) int
	BaseExpGained(exp, potential, skillLevel int) int
	BoostedExpGained(exp, growthBuff int) int
	RelatedAttributeExp(exp, divisor int) int
	CharaExpFromSkillExp(required int64, charaLevel, exp, divisor int) int64
	NegotiationGoldThreshold(level int) int
	NegotiationExp(gold, level int) int
	DetectionExp(dungeonLevel int) int
	CastingExp(cost int) int
	SpellExp(cost int) int
	ManaCapacityExp(mp, maxMP int) int
	HealingExp(hp, maxHP int) int
	MeditationExp(mp, maxMP int) int
	StealthExp(overworld bool) int
	WeightLiftingExp(weight, maxWeight int) int
	MemorizationExp(difficulty int) int
	CraftingExp(materials int) int
}

// Presenter receives fire-and-forget presentation requests.
type Presenter interface {
	PlaySound(id string)
	HaltInput()
	Notify(n Notification)
}

// Visibility reports whether a character can currently be observed.
type Visibility interface {
	IsVisible(c Character) bool
}

// Environment describes where the character currently is.
type Environment interface {
	IsLowYieldArea() bool
	DungeonLevel() int
	IsOverworld() bool
}

// Rand draws uniform integers in [0, n). *rand.Rand implements it.
type Rand interface {
	IntN(n int) int
}

// NotificationKind identifies what happened.
type NotificationKind uint8

const (
	NotifySkillUp NotificationKind = iota + 1
	NotifySkillDown
	NotifyActionGained
)

func (k NotificationKind) String() string {
	switch k {
	case NotifySkillUp:
		return "skill_up"
	case NotifySkillDown:
		return "skill_down"
	case NotifyActionGained:
		return "action_gained"
	default:
		return fmt.Sprintf("notification(%d)", uint8(k))
	}
}

// Color is the tint a presenter applies to a notification line.
type Color uint8

const (
	ColorDefault Color = iota
	ColorGreen
	ColorRed
	ColorOrange
)

// Notification describes one presentable event.
type Notification struct {
	ID        uuid.UUID
	Kind      NotificationKind
	Character string
	Skill     data.SkillID // zero for NotifyActionGained
	Action    string       // set for NotifyActionGained
	Level     int          // base level after the change
	Delta     int          // levels gained or lost
	Color     Color
}

// Deps wires the engine to its collaborators. Catalog is required;
// everything else has a default.
type Deps struct {
	Catalog             Catalog
	Formulas            Formulas
	Presenter           Presenter
	Visibility          Visibility
	Env                 Environment
	Rand                Rand
	Logger              *slog.Logger
	MaxPropagationDepth int
}

// Engine applies progression rules to characters.
// One engine may serve many characters; it holds no per-character state,
// but Rand must not be shared across goroutines unless it is safe to.
type Engine struct {
	catalog    Catalog
	formulas   Formulas
	presenter  Presenter
	visibility Visibility
	env        Environment
	rnd        Rand
	log        *slog.Logger
	maxDepth   int
}

// NewEngine creates an engine from deps.
func NewEngine(d Deps) (*Engine, error) {
	if d.Catalog == nil {
		return nil, fmt.Errorf("skill engine: catalog is required")
	}
	e := &Engine{
		catalog:    d.Catalog,
		formulas:   d.Formulas,
		presenter:  d.Presenter,
		visibility: d.Visibility,
		env:        d.Env,
		rnd:        d.Rand,
		log:        d.Logger,
		maxDepth:   d.MaxPropagationDepth,
	}
	if e.formulas == nil {
		e.formulas = formula.Default{}
	}
	if e.presenter == nil {
		e.presenter = discardPresenter{}
	}
	if e.visibility == nil {
		e.visibility = AlwaysVisible{}
	}
	if e.env == nil {
		e.env = StaticEnvironment{}
	}
	if e.rnd == nil {
		e.rnd = globalRand{}
	}
	if e.log == nil {
		e.log = slog.Default()
	}
	if e.maxDepth <= 0 {
		e.maxDepth = DefaultMaxPropagationDepth
	}
	return e, nil
}

func (e *Engine) notify(c Character, kind NotificationKind, id data.SkillID, level, delta int, color Color) {
	e.presenter.Notify(Notification{
		ID:        uuid.New(),
		Kind:      kind,
		Character: c.Name(),
		Skill:     id,
		Level:     level,
		Delta:     delta,
		Color:     color,
	})
}

// AlwaysVisible treats every character as observable.
type AlwaysVisible struct{}

func (AlwaysVisible) IsVisible(Character) bool { return true }

// StaticEnvironment is a fixed Environment.
type StaticEnvironment struct {
	LowYield  bool
	Dungeon   int
	Overworld bool
}

func (s StaticEnvironment) IsLowYieldArea() bool { return s.LowYield }
func (s StaticEnvironment) DungeonLevel() int    { return s.Dungeon }
func (s StaticEnvironment) IsOverworld() bool    { return s.Overworld }

type discardPresenter struct{}

func (discardPresenter) PlaySound(string)    {}
func (discardPresenter) HaltInput()          {}
func (discardPresenter) Notify(Notification) {}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }
