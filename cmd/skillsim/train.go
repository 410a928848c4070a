package main

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/spf13/cobra"

	"github.com/udisondev/skillgrowth/internal/data"
	"github.com/udisondev/skillgrowth/internal/db"
	"github.com/udisondev/skillgrowth/internal/game/skill"
	"github.com/udisondev/skillgrowth/internal/model"
	"github.com/udisondev/skillgrowth/internal/sim"
)

func trainCmd(a *app) *cobra.Command {
	var (
		charID    int64
		create    string
		trigger   string
		times     int
		spell     string
		craft     string
		gold      int
		materials int
	)

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train a stored character with one trigger",
		Long: `Loads a character's skills from PostgreSQL, fires the trigger the
given number of times and saves the result.

Use --create NAME to insert a fresh character with common skills first.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			tr, err := skill.ParseTrigger(trigger)
			if err != nil {
				return err
			}
			ev := skill.Event{Trigger: tr, Gold: gold, Materials: materials}
			if ev.Spell, err = lookup(a.catalog, spell); err != nil {
				return err
			}
			if ev.Skill, err = lookup(a.catalog, craft); err != nil {
				return err
			}

			database, err := db.New(ctx, a.cfg.Database.DSN())
			if err != nil {
				return err
			}
			defer database.Close()
			store := db.NewCharacterStore(database.Pool(), a.cfg.Cache.Size, a.cfg.Cache.TTL)

			seed, err := a.cfg.ResolveSeed()
			if err != nil {
				return err
			}
			e, err := a.runner.Engine(rand.New(rand.NewPCG(uint64(seed), uint64(charID))))
			if err != nil {
				return err
			}

			if create != "" {
				c, err := model.NewCharacter(create, 1, model.RolePlayer)
				if err != nil {
					return err
				}
				a.runner.Prepare(e, c)
				if charID, err = store.Create(ctx, c); err != nil {
					return fmt.Errorf("creating character: %w", err)
				}
				slog.Info("character created", "characterID", charID, "name", create)
			}

			c, err := sim.TrainStored(ctx, store, e, charID, ev, times)
			if err != nil {
				return err
			}
			return sim.WriteReport(os.Stdout, a.catalog, a.cfg.Locale, []*model.Character{c})
		},
	}

	cmd.Flags().Int64Var(&charID, "character-id", 0, "stored character id")
	cmd.Flags().StringVar(&create, "create", "", "create a new character with this name")
	cmd.Flags().StringVar(&trigger, "trigger", "", "trigger name, e.g. digging")
	cmd.Flags().IntVar(&times, "times", 1, "how many times to fire the trigger")
	cmd.Flags().StringVar(&spell, "spell", "", "spell key for casting and memorization")
	cmd.Flags().StringVar(&craft, "craft", "", "skill key for crafting")
	cmd.Flags().IntVar(&gold, "gold", 0, "deal value for negotiation")
	cmd.Flags().IntVar(&materials, "materials", 0, "materials consumed by crafting")
	_ = cmd.MarkFlagRequired("trigger")
	cmd.MarkFlagsOneRequired("character-id", "create")

	return cmd
}

func lookup(catalog *data.SkillCatalog, key string) (data.SkillID, error) {
	if key == "" {
		return 0, nil
	}
	id, ok := catalog.Lookup(key)
	if !ok {
		return 0, fmt.Errorf("skill %q: %w", key, data.ErrUnknownSkill)
	}
	return id, nil
}
