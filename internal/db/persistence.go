package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/skillgrowth/internal/model"
)

// CharacterStore сохраняет/загружает персонажа вместе со скиллами.
// Таблицы скиллов кешируются в LRU с TTL.
type CharacterStore struct {
	pool      *pgxpool.Pool
	charRepo  *CharacterRepository
	skillRepo *SkillRepository
	cache     *skillCache
}

// NewCharacterStore создаёт хранилище. cacheSize <= 0 отключает кеш.
func NewCharacterStore(pool *pgxpool.Pool, cacheSize int, cacheTTL time.Duration) *CharacterStore {
	s := &CharacterStore{
		pool:      pool,
		charRepo:  NewCharacterRepository(pool),
		skillRepo: NewSkillRepository(pool),
	}
	if cacheSize > 0 {
		s.cache = newSkillCache(cacheSize, cacheTTL)
	}
	return s
}

// Characters returns the underlying character repository.
func (s *CharacterStore) Characters() *CharacterRepository { return s.charRepo }

// Skills returns the underlying skill repository.
func (s *CharacterStore) Skills() *SkillRepository { return s.skillRepo }

// Create inserts a new character with its skills and returns its id.
func (s *CharacterStore) Create(ctx context.Context, c *model.Character) (int64, error) {
	id, err := s.charRepo.Create(ctx, c)
	if err != nil {
		return 0, err
	}
	if err := s.Save(ctx, id, c); err != nil {
		return 0, err
	}
	return id, nil
}

// Save saves character progress, skills, spell stocks and actions in a
// single transaction.
func (s *CharacterStore) Save(ctx context.Context, charID int64, c *model.Character) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction for character %d: %w", charID, err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && err.Error() != "tx is closed" {
			slog.Error("rollback failed", "characterID", charID, "error", err)
		}
	}()

	// 1. Level and experience pools
	if err := s.charRepo.UpdateTx(ctx, tx, charID, c); err != nil {
		return err
	}

	// 2. Skill table
	if err := s.skillRepo.SaveTx(ctx, tx, charID, c.Skills()); err != nil {
		return fmt.Errorf("saving skills for character %d: %w", charID, err)
	}

	// 3. Spell stocks and special actions
	if err := s.skillRepo.SaveSpellStocksTx(ctx, tx, charID, c); err != nil {
		return fmt.Errorf("saving spell stocks for character %d: %w", charID, err)
	}
	if err := s.skillRepo.SaveActionsTx(ctx, tx, charID, c); err != nil {
		return fmt.Errorf("saving actions for character %d: %w", charID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		if s.cache != nil {
			s.cache.Invalidate(charID)
		}
		return fmt.Errorf("commit transaction for character %d: %w", charID, err)
	}

	if s.cache != nil {
		s.cache.Set(charID, c.Skills())
	}

	slog.Debug("character saved",
		"characterID", charID,
		"character", c.Name(),
		"skills", c.Skills().Len())

	return nil
}

// Load restores a character with its skills, spell stocks and actions.
// Returns ErrCharacterNotFound for an unknown id.
func (s *CharacterStore) Load(ctx context.Context, charID int64) (*model.Character, error) {
	c, err := s.charRepo.LoadByID(ctx, charID)
	if err != nil {
		return nil, err
	}

	table, err := s.loadSkills(ctx, charID)
	if err != nil {
		return nil, err
	}
	c.SetSkills(table)

	if err := s.skillRepo.LoadSpellStocks(ctx, charID, c); err != nil {
		return nil, err
	}
	if err := s.skillRepo.LoadActions(ctx, charID, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CharacterStore) loadSkills(ctx context.Context, charID int64) (*model.SkillTable, error) {
	if s.cache != nil {
		if t, ok := s.cache.Get(charID); ok {
			return t, nil
		}
	}

	t, err := s.skillRepo.LoadByCharacterID(ctx, charID)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Set(charID, t)
	}
	return t, nil
}
