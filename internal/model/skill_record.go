package model

import (
	"fmt"

	"github.com/udisondev/skillgrowth/internal/data"
)

// SkillRecord описывает прогресс персонажа в одном скилле.
// Level = BaseLevel + временные модификаторы персонажа (здесь не хранятся).
type SkillRecord struct {
	BaseLevel  int
	Experience int // progress toward next level, [0, data.ExpPerLevel) at rest
	Potential  int // [1, data.MaxPotential] when learned, 0 = growth disabled
}

// Learned reports whether the record holds a learned skill.
func (r SkillRecord) Learned() bool {
	return r.BaseLevel != 0
}

// SkillTable is a fixed-capacity table of skill records, one slot per
// identifier. Owned by exactly one character; not safe for concurrent use.
type SkillTable struct {
	records [data.MaxSkillID]SkillRecord
}

// NewSkillTable returns an empty table.
func NewSkillTable() *SkillTable {
	return &SkillTable{}
}

// Get returns a copy of the record for id.
// Panics if id is outside [0, data.MaxSkillID).
func (t *SkillTable) Get(id data.SkillID) SkillRecord {
	return t.records[mustIndex(id)]
}

// Set writes all three fields of a record at once.
// baseLevel is clamped to [0, data.MaxSkillLevel].
// Panics if id is outside [0, data.MaxSkillID).
func (t *SkillTable) Set(id data.SkillID, baseLevel, experience, potential int) {
	t.records[mustIndex(id)] = SkillRecord{
		BaseLevel:  clamp(baseLevel, 0, data.MaxSkillLevel),
		Experience: experience,
		Potential:  potential,
	}
}

// Each calls fn for every non-empty record in ascending id order.
func (t *SkillTable) Each(fn func(id data.SkillID, r SkillRecord)) {
	for i := range t.records {
		if t.records[i] != (SkillRecord{}) {
			fn(data.SkillID(i), t.records[i])
		}
	}
}

// Len returns the number of non-empty records.
func (t *SkillTable) Len() int {
	n := 0
	t.Each(func(data.SkillID, SkillRecord) { n++ })
	return n
}

// Clone returns a deep copy.
func (t *SkillTable) Clone() *SkillTable {
	c := *t
	return &c
}

func mustIndex(id data.SkillID) int {
	if !id.Valid() {
		panic(fmt.Sprintf("skill id %d out of range [0,%d)", id, data.MaxSkillID))
	}
	return int(id)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
