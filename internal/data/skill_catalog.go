package data

import (
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalog/skills.yaml
var embeddedSkillCatalog []byte

var (
	// ErrUnknownSkill is returned when a catalog entry references an id
	// that is not declared.
	ErrUnknownSkill = errors.New("unknown skill")
	// ErrCatalogCycle is returned when related attribute links form a cycle.
	ErrCatalogCycle = errors.New("related attribute cycle")
)

// SkillTemplate: метаданные скилла из каталога.
type SkillTemplate struct {
	ID         SkillID `yaml:"id"`
	Key        string  `yaml:"key"`
	Name       string  `yaml:"name"`
	NameJA     string  `yaml:"name_ja"`
	Related    SkillID `yaml:"related"`
	Cost       int     `yaml:"cost"`
	Difficulty int     `yaml:"difficulty"`
}

// ActionTemplate describes a special action unlocked by skill growth.
type ActionTemplate struct {
	Key    string `yaml:"key"`
	Name   string `yaml:"name"`
	NameJA string `yaml:"name_ja"`
}

type catalogFile struct {
	Skills  []SkillTemplate  `yaml:"skills"`
	Actions []ActionTemplate `yaml:"actions"`
}

// SkillCatalog is a read-only registry of skill templates indexed by id.
// Safe for concurrent reads after construction.
type SkillCatalog struct {
	skills  [MaxSkillID]*SkillTemplate
	byKey   map[string]SkillID
	actions map[string]*ActionTemplate
}

// LoadSkillCatalog строит каталог из встроенного YAML.
// Вызывается при старте.
func LoadSkillCatalog() (*SkillCatalog, error) {
	c, err := ParseSkillCatalog(embeddedSkillCatalog)
	if err != nil {
		return nil, err
	}
	slog.Info("loaded skill catalog", "skills", len(c.byKey), "actions", len(c.actions))
	return c, nil
}

// ParseSkillCatalog parses and validates a catalog document.
func ParseSkillCatalog(raw []byte) (*SkillCatalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parsing skill catalog: %w", err)
	}

	c := &SkillCatalog{
		byKey:   make(map[string]SkillID, len(file.Skills)),
		actions: make(map[string]*ActionTemplate, len(file.Actions)),
	}
	for i := range file.Skills {
		t := &file.Skills[i]
		if !t.ID.Valid() {
			return nil, fmt.Errorf("skill %q: id %d out of range [0,%d)", t.Key, t.ID, MaxSkillID)
		}
		if c.skills[t.ID] != nil {
			return nil, fmt.Errorf("skill %q: duplicate id %d", t.Key, t.ID)
		}
		if t.Key == "" {
			return nil, fmt.Errorf("skill %d: empty key", t.ID)
		}
		if _, dup := c.byKey[t.Key]; dup {
			return nil, fmt.Errorf("skill %d: duplicate key %q", t.ID, t.Key)
		}
		c.skills[t.ID] = t
		c.byKey[t.Key] = t.ID
	}
	for i := range file.Actions {
		a := &file.Actions[i]
		c.actions[a.Key] = a
	}

	if err := c.validateRelations(); err != nil {
		return nil, err
	}
	return c, nil
}

// validateRelations checks that every related attribute exists and that no
// chain of relations loops back on itself.
func (c *SkillCatalog) validateRelations() error {
	for _, t := range c.skills {
		if t == nil || t.Related == 0 {
			continue
		}
		if !t.Related.Valid() || c.skills[t.Related] == nil {
			return fmt.Errorf("skill %q related to %d: %w", t.Key, t.Related, ErrUnknownSkill)
		}

		seen := map[SkillID]bool{t.ID: true}
		for next := t.Related; next != 0; next = c.skills[next].Related {
			if seen[next] {
				return fmt.Errorf("skill %q: %w through %d", t.Key, ErrCatalogCycle, next)
			}
			seen[next] = true
			if !next.Valid() || c.skills[next] == nil {
				return fmt.Errorf("skill %q chain reaches %d: %w", t.Key, next, ErrUnknownSkill)
			}
		}
	}
	return nil
}

// Template returns the template for id.
func (c *SkillCatalog) Template(id SkillID) (*SkillTemplate, bool) {
	if !id.Valid() || c.skills[id] == nil {
		return nil, false
	}
	return c.skills[id], true
}

// RelatedAttribute returns the basic attribute id trains alongside.
func (c *SkillCatalog) RelatedAttribute(id SkillID) (SkillID, bool) {
	t, ok := c.Template(id)
	if !ok || t.Related == 0 {
		return 0, false
	}
	return t.Related, true
}

// Cost returns the mana cost of a spell, 0 for anything else.
func (c *SkillCatalog) Cost(id SkillID) int {
	if t, ok := c.Template(id); ok {
		return t.Cost
	}
	return 0
}

// Difficulty returns the learning difficulty of a spell.
func (c *SkillCatalog) Difficulty(id SkillID) int {
	if t, ok := c.Template(id); ok {
		return t.Difficulty
	}
	return 0
}

// Name returns the display name of id for locale ("en", "ja").
// Unknown ids render as "#<id>".
func (c *SkillCatalog) Name(id SkillID, locale string) string {
	t, ok := c.Template(id)
	if !ok {
		return fmt.Sprintf("#%d", id)
	}
	if isJapanese(locale) && t.NameJA != "" {
		return t.NameJA
	}
	return t.Name
}

// ActionName returns the display name of a special action.
func (c *SkillCatalog) ActionName(key, locale string) string {
	a, ok := c.actions[key]
	if !ok {
		return key
	}
	if isJapanese(locale) && a.NameJA != "" {
		return a.NameJA
	}
	return a.Name
}

// Lookup resolves a skill key ("digging") to its id.
func (c *SkillCatalog) Lookup(key string) (SkillID, bool) {
	id, ok := c.byKey[key]
	return id, ok
}

// IDs returns the declared ids of the given kind in ascending order.
func (c *SkillCatalog) IDs(kind Kind) []SkillID {
	var ids []SkillID
	for id, t := range c.skills {
		if t != nil && SkillID(id).Kind() == kind {
			ids = append(ids, SkillID(id))
		}
	}
	return ids
}

func isJapanese(locale string) bool {
	return strings.HasPrefix(strings.ToLower(locale), "ja")
}
