package db

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/udisondev/skillgrowth/internal/model"
)

// skillCache keeps recently used skill tables in memory with a TTL.
// Stored and returned tables are clones: callers own what they get.
type skillCache struct {
	lru *expirable.LRU[int64, *model.SkillTable]
}

func newSkillCache(size int, ttl time.Duration) *skillCache {
	return &skillCache{
		lru: expirable.NewLRU[int64, *model.SkillTable](size, nil, ttl),
	}
}

func (c *skillCache) Get(charID int64) (*model.SkillTable, bool) {
	t, ok := c.lru.Get(charID)
	if !ok {
		return nil, false
	}
	return t.Clone(), true
}

func (c *skillCache) Set(charID int64, t *model.SkillTable) {
	c.lru.Add(charID, t.Clone())
}

func (c *skillCache) Invalidate(charID int64) {
	c.lru.Remove(charID)
}

func (c *skillCache) Len() int {
	return c.lru.Len()
}
