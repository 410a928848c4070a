// Package sim drives characters through random training turns.
package sim

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/skillgrowth/internal/data"
	"github.com/udisondev/skillgrowth/internal/game/skill"
	"github.com/udisondev/skillgrowth/internal/model"
)

// Skills every simulated character learns so that all triggers have an effect.
var trainedSkills = []data.SkillID{
	data.SkillLiteracy,
	data.SkillFaith,
	data.SkillWeightLifting,
	data.SkillNegotiation,
	data.SkillLockPicking,
	data.SkillDetection,
	data.SkillInvesting,
	data.SkillDigging,
	data.SkillManaCapacity,
	data.SkillMemorization,
	data.SkillCasting,
	data.SkillMagicDevice,
	data.SkillDisarmTrap,
	data.SkillFishing,
}

var craftSkills = []data.SkillID{177, 178, 180, 184}

// Every checkpointInterval turns, character experience is applied and
// special actions are checked.
const checkpointInterval = 10

// Options control one simulation run.
type Options struct {
	Characters int
	Turns      int
	Level      int
	Player     bool // first character is the player, the rest allies
	Seed       int64
}

// Runner builds engines over shared collaborators.
type Runner struct {
	catalog   *data.SkillCatalog
	presenter skill.Presenter
	env       skill.Environment
	maxDepth  int
	log       *slog.Logger
}

// NewRunner creates a Runner.
func NewRunner(catalog *data.SkillCatalog, presenter skill.Presenter, env skill.Environment, maxDepth int, log *slog.Logger) *Runner {
	if log == nil {
		log = slog.Default()
	}
	return &Runner{
		catalog:   catalog,
		presenter: presenter,
		env:       env,
		maxDepth:  maxDepth,
		log:       log,
	}
}

// Engine returns an engine drawing from rnd.
// rnd must not be shared with another goroutine.
func (r *Runner) Engine(rnd skill.Rand) (*skill.Engine, error) {
	return skill.NewEngine(skill.Deps{
		Catalog:             r.catalog,
		Presenter:           r.presenter,
		Env:                 r.env,
		Rand:                rnd,
		Logger:              r.log,
		MaxPropagationDepth: r.maxDepth,
	})
}

// Run simulates opts.Characters characters concurrently, one goroutine
// each. Results are deterministic for a given seed.
func (r *Runner) Run(ctx context.Context, opts Options) ([]*model.Character, error) {
	if opts.Characters < 1 {
		return nil, fmt.Errorf("characters must be positive, got %d", opts.Characters)
	}
	if opts.Turns < 0 {
		return nil, fmt.Errorf("turns must not be negative, got %d", opts.Turns)
	}

	chars := make([]*model.Character, opts.Characters)
	g, ctx := errgroup.WithContext(ctx)

	for i := range chars {
		g.Go(func() error {
			rnd := rand.New(rand.NewPCG(uint64(opts.Seed), uint64(i)))
			e, err := r.Engine(rnd)
			if err != nil {
				return err
			}

			role := model.RoleOther
			if opts.Player {
				role = model.RoleAlly
				if i == 0 {
					role = model.RolePlayer
				}
			}
			c, err := model.NewCharacter(fmt.Sprintf("adventurer-%02d", i+1), opts.Level, role)
			if err != nil {
				return fmt.Errorf("creating character %d: %w", i+1, err)
			}
			r.Prepare(e, c)

			if err := r.Train(ctx, e, c, rnd, opts.Turns); err != nil {
				return fmt.Errorf("simulating %s: %w", c.Name(), err)
			}
			chars[i] = c
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return chars, nil
}

// Prepare seeds common skills and the skills triggers train.
func (r *Runner) Prepare(e *skill.Engine, c *model.Character) {
	e.InitCommonSkills(c)
	for _, id := range trainedSkills {
		e.GainSkill(c, id, 1, 0)
	}
	for _, id := range craftSkills {
		e.GainSkill(c, id, 1, 0)
	}
	for _, id := range r.catalog.IDs(data.KindSpell) {
		e.GainSkill(c, id, 1, 3)
	}
}

// Train fires turns random triggers on c.
func (r *Runner) Train(ctx context.Context, e *skill.Engine, c *model.Character, rnd *rand.Rand, turns int) error {
	triggers := skill.Triggers()
	spells := r.catalog.IDs(data.KindSpell)

	for turn := 1; turn <= turns; turn++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.SetVitals(randomVitals(rnd))
		ev := skill.Event{
			Trigger:   triggers[rnd.IntN(len(triggers))],
			Gold:      rnd.IntN(5000),
			Skill:     craftSkills[rnd.IntN(len(craftSkills))],
			Materials: rnd.IntN(5),
		}
		if len(spells) > 0 {
			ev.Spell = spells[rnd.IntN(len(spells))]
		}
		e.Gain(c, ev)

		if turn%checkpointInterval == 0 {
			r.checkpoint(e, c)
		}
	}
	r.checkpoint(e, c)
	return nil
}

func (r *Runner) checkpoint(e *skill.Engine, c *model.Character) {
	if gained := c.ApplyExperience(); gained > 0 {
		r.log.Debug("character level up", "character", c.Name(), "level", c.Level(), "gained", gained)
	}
	e.GainSpecialActions(c)
}

func randomVitals(rnd *rand.Rand) model.Vitals {
	maxHP := 50 + rnd.IntN(450)
	maxMP := 20 + rnd.IntN(280)
	maxWeight := 1000 + rnd.IntN(9000)
	return model.Vitals{
		HP:        rnd.IntN(maxHP + 1),
		MaxHP:     maxHP,
		MP:        rnd.IntN(maxMP*2+1) - maxMP,
		MaxMP:     maxMP,
		Weight:    rnd.IntN(maxWeight * 2),
		MaxWeight: maxWeight,
	}
}
