package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/skillgrowth/internal/model"
)

// CharacterRepository управляет персонажами в БД.
type CharacterRepository struct {
	db *pgxpool.Pool
}

// NewCharacterRepository создаёт новый CharacterRepository.
func NewCharacterRepository(db *pgxpool.Pool) *CharacterRepository {
	return &CharacterRepository{db: db}
}

// Create вставляет персонажа и возвращает его ID.
func (r *CharacterRepository) Create(ctx context.Context, c *model.Character) (int64, error) {
	query := `
		INSERT INTO characters (name, role, level, experience, sleep_experience)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING character_id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		c.Name(), int16(c.Role()), c.Level(), c.Experience(), c.SleepExperience(),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("creating character %q: %w", c.Name(), err)
	}
	return id, nil
}

// LoadByID загружает персонажа по ID без скиллов.
// Возвращает ErrCharacterNotFound если строки нет.
func (r *CharacterRepository) LoadByID(ctx context.Context, characterID int64) (*model.Character, error) {
	query := `
		SELECT name, role, level, experience, sleep_experience
		FROM characters
		WHERE character_id = $1
	`

	var (
		name       string
		role       int16
		level      int32
		experience int64
		sleep      int64
	)
	err := r.db.QueryRow(ctx, query, characterID).Scan(&name, &role, &level, &experience, &sleep)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("loading character %d: %w", characterID, ErrCharacterNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("loading character %d: %w", characterID, err)
	}

	c, err := model.NewCharacter(name, int(level), model.Role(role))
	if err != nil {
		return nil, fmt.Errorf("restoring character %d: %w", characterID, err)
	}
	if err := c.SetProgress(int(level), experience, sleep); err != nil {
		return nil, fmt.Errorf("restoring character %d: %w", characterID, err)
	}
	return c, nil
}

// UpdateTx сохраняет уровень и опыт персонажа внутри транзакции.
func (r *CharacterRepository) UpdateTx(ctx context.Context, tx pgx.Tx, characterID int64, c *model.Character) error {
	query := `
		UPDATE characters
		SET level = $2, experience = $3, sleep_experience = $4, updated_at = now()
		WHERE character_id = $1
	`

	tag, err := tx.Exec(ctx, query, characterID, c.Level(), c.Experience(), c.SleepExperience())
	if err != nil {
		return fmt.Errorf("updating character %d: %w", characterID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("updating character %d: %w", characterID, ErrCharacterNotFound)
	}
	return nil
}

// ListIDs returns all character ids in ascending order.
func (r *CharacterRepository) ListIDs(ctx context.Context) ([]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT character_id FROM characters ORDER BY character_id`)
	if err != nil {
		return nil, fmt.Errorf("listing characters: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("listing characters: %w", err)
	}
	return ids, nil
}
