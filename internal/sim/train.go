package sim

import (
	"context"
	"fmt"

	"github.com/udisondev/skillgrowth/internal/game/skill"
	"github.com/udisondev/skillgrowth/internal/model"
)

// Store loads and saves characters. *db.CharacterStore implements it.
type Store interface {
	Load(ctx context.Context, charID int64) (*model.Character, error)
	Save(ctx context.Context, charID int64, c *model.Character) error
}

// TrainStored loads a character, fires ev times times and saves it back.
func TrainStored(ctx context.Context, store Store, e *skill.Engine, charID int64, ev skill.Event, times int) (*model.Character, error) {
	c, err := store.Load(ctx, charID)
	if err != nil {
		return nil, fmt.Errorf("loading character %d: %w", charID, err)
	}

	for range times {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		e.Gain(c, ev)
	}
	c.ApplyExperience()
	e.GainSpecialActions(c)

	if err := store.Save(ctx, charID, c); err != nil {
		return nil, fmt.Errorf("saving character %d: %w", charID, err)
	}
	return c, nil
}
