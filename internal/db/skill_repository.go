package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/skillgrowth/internal/data"
	"github.com/udisondev/skillgrowth/internal/model"
)

// SkillRepository управляет скиллами персонажей в БД:
// таблица скиллов, запас заклинаний и особые действия.
type SkillRepository struct {
	db *pgxpool.Pool
}

// NewSkillRepository создаёт новый SkillRepository.
func NewSkillRepository(db *pgxpool.Pool) *SkillRepository {
	return &SkillRepository{db: db}
}

// LoadByCharacterID загружает таблицу скиллов персонажа.
// Неизученные скиллы в БД не хранятся.
func (r *SkillRepository) LoadByCharacterID(ctx context.Context, charID int64) (*model.SkillTable, error) {
	query := `
		SELECT skill_id, base_level, experience, potential
		FROM character_skills
		WHERE character_id = $1
		ORDER BY skill_id
	`

	rows, err := r.db.Query(ctx, query, charID)
	if err != nil {
		return nil, fmt.Errorf("querying skills for character %d: %w", charID, err)
	}
	defer rows.Close()

	table := model.NewSkillTable()
	for rows.Next() {
		var skillID int16
		var level, exp, potential int32
		if err := rows.Scan(&skillID, &level, &exp, &potential); err != nil {
			return nil, fmt.Errorf("scanning skill row: %w", err)
		}

		id := data.SkillID(skillID)
		if !id.Valid() {
			return nil, fmt.Errorf("character %d: skill %d: %w", charID, skillID, data.ErrUnknownSkill)
		}
		table.Set(id, int(level), int(exp), int(potential))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating skill rows: %w", err)
	}

	return table, nil
}

// Save сохраняет все скиллы персонажа (полная перезапись).
// Удаляет старые, вставляет новые в одной транзакции.
func (r *SkillRepository) Save(ctx context.Context, charID int64, table *model.SkillTable) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		// Rollback after commit is expected to fail
		_ = tx.Rollback(ctx)
	}()

	if err := r.SaveTx(ctx, tx, charID, table); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing skills save: %w", err)
	}

	return nil
}

// SaveTx перезаписывает скиллы персонажа внутри существующей транзакции.
func (r *SkillRepository) SaveTx(ctx context.Context, tx pgx.Tx, charID int64, table *model.SkillTable) error {
	if _, err := tx.Exec(ctx, `DELETE FROM character_skills WHERE character_id = $1`, charID); err != nil {
		return fmt.Errorf("deleting existing skills: %w", err)
	}

	rows := make([][]any, 0, table.Len())
	table.Each(func(id data.SkillID, rec model.SkillRecord) {
		rows = append(rows, []any{charID, int16(id), int32(rec.BaseLevel), int32(rec.Experience), int32(rec.Potential)})
	})

	if _, err := tx.CopyFrom(ctx,
		pgx.Identifier{"character_skills"},
		[]string{"character_id", "skill_id", "base_level", "experience", "potential"},
		pgx.CopyFromRows(rows),
	); err != nil {
		return fmt.Errorf("inserting %d skills: %w", len(rows), err)
	}

	return nil
}

// UpsertSkill сохраняет один скилл (UPSERT).
func (r *SkillRepository) UpsertSkill(ctx context.Context, charID int64, id data.SkillID, rec model.SkillRecord) error {
	query := `
		INSERT INTO character_skills (character_id, skill_id, base_level, experience, potential)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (character_id, skill_id)
		DO UPDATE SET base_level = $3, experience = $4, potential = $5
	`

	if _, err := r.db.Exec(ctx, query, charID, int16(id), rec.BaseLevel, rec.Experience, rec.Potential); err != nil {
		return fmt.Errorf("upserting skill %d for character %d: %w", id, charID, err)
	}

	return nil
}

// DeleteSkill удаляет один скилл (разучивание).
func (r *SkillRepository) DeleteSkill(ctx context.Context, charID int64, id data.SkillID) error {
	query := `DELETE FROM character_skills WHERE character_id = $1 AND skill_id = $2`

	if _, err := r.db.Exec(ctx, query, charID, int16(id)); err != nil {
		return fmt.Errorf("deleting skill %d for character %d: %w", id, charID, err)
	}

	return nil
}

// LoadSpellStocks восстанавливает запас заклинаний в c.
func (r *SkillRepository) LoadSpellStocks(ctx context.Context, charID int64, c *model.Character) error {
	rows, err := r.db.Query(ctx,
		`SELECT spell_id, stock FROM character_spell_stocks WHERE character_id = $1`, charID)
	if err != nil {
		return fmt.Errorf("querying spell stocks for character %d: %w", charID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var spellID int16
		var stock int32
		if err := rows.Scan(&spellID, &stock); err != nil {
			return fmt.Errorf("scanning spell stock row: %w", err)
		}
		c.SetSpellStock(data.SkillID(spellID), int(stock))
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating spell stock rows: %w", err)
	}
	return nil
}

// SaveSpellStocksTx перезаписывает запас заклинаний внутри транзакции.
func (r *SkillRepository) SaveSpellStocksTx(ctx context.Context, tx pgx.Tx, charID int64, c *model.Character) error {
	if _, err := tx.Exec(ctx, `DELETE FROM character_spell_stocks WHERE character_id = $1`, charID); err != nil {
		return fmt.Errorf("deleting spell stocks: %w", err)
	}

	batch := &pgx.Batch{}
	c.EachSpellStock(func(id data.SkillID, n int) {
		batch.Queue(`INSERT INTO character_spell_stocks (character_id, spell_id, stock) VALUES ($1, $2, $3)`,
			charID, int16(id), int32(n))
	})
	if batch.Len() == 0 {
		return nil
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("inserting spell stocks: %w", err)
	}
	return nil
}

// LoadActions восстанавливает изученные особые действия в c.
func (r *SkillRepository) LoadActions(ctx context.Context, charID int64, c *model.Character) error {
	rows, err := r.db.Query(ctx,
		`SELECT action_key FROM character_actions WHERE character_id = $1 ORDER BY action_key`, charID)
	if err != nil {
		return fmt.Errorf("querying actions for character %d: %w", charID, err)
	}
	keys, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return fmt.Errorf("collecting actions for character %d: %w", charID, err)
	}
	for _, k := range keys {
		c.LearnAction(k)
	}
	return nil
}

// SaveActionsTx дописывает изученные особые действия; действия не забываются.
func (r *SkillRepository) SaveActionsTx(ctx context.Context, tx pgx.Tx, charID int64, c *model.Character) error {
	for _, key := range c.Actions() {
		if _, err := tx.Exec(ctx,
			`INSERT INTO character_actions (character_id, action_key) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			charID, key,
		); err != nil {
			return fmt.Errorf("inserting action %q: %w", key, err)
		}
	}
	return nil
}
