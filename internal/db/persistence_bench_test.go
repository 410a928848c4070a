package db

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/udisondev/skillgrowth/internal/data"
	"github.com/udisondev/skillgrowth/internal/model"
)

// --- helpers ---

func benchCharacter(b *testing.B, name string, skills int) *model.Character {
	b.Helper()
	c := newTestCharacter(b, name)
	for i := range skills {
		c.Skills().Set(data.SkillID(150+i%40), 1+i, 0, 100)
	}
	return c
}

// Benchmark Save: полный транзакционный save (progress + COPY skills + batch stocks)
func BenchmarkCharacterStore_Save(b *testing.B) {
	pool := setupTestDB(b)
	store := NewCharacterStore(pool, 0, 0)
	ctx := context.Background()

	for _, n := range []int{10, 40} {
		b.Run(fmt.Sprintf("skills=%d", n), func(b *testing.B) {
			c := benchCharacter(b, fmt.Sprintf("BenchSave%d", n), n)
			id, err := store.Create(ctx, c)
			if err != nil {
				b.Fatalf("creating character: %v", err)
			}

			b.ResetTimer()
			for b.Loop() {
				if err := store.Save(ctx, id, c); err != nil {
					b.Fatalf("Save failed: %v", err)
				}
			}
		})
	}
}

// Benchmark Load: cache miss vs hit
func BenchmarkCharacterStore_Load(b *testing.B) {
	pool := setupTestDB(b)
	ctx := context.Background()

	for _, tc := range []struct {
		name      string
		cacheSize int
	}{
		{"no_cache", 0},
		{"cached", 16},
	} {
		b.Run(tc.name, func(b *testing.B) {
			store := NewCharacterStore(pool, tc.cacheSize, time.Minute)
			id, err := store.Create(ctx, benchCharacter(b, "BenchLoad_"+tc.name, 40))
			if err != nil {
				b.Fatalf("creating character: %v", err)
			}

			b.ResetTimer()
			for b.Loop() {
				if _, err := store.Load(ctx, id); err != nil {
					b.Fatalf("Load failed: %v", err)
				}
			}
		})
	}
}

// Benchmark UpsertSkill: одиночный апдейт скилла, конкурентно
func BenchmarkSkillRepository_UpsertSkill(b *testing.B) {
	pool := setupTestDB(b)
	store := NewCharacterStore(pool, 0, 0)
	ctx := context.Background()

	id, err := store.Create(ctx, benchCharacter(b, "BenchUpsert", 0))
	if err != nil {
		b.Fatalf("creating character: %v", err)
	}
	rec := model.SkillRecord{BaseLevel: 10, Experience: 500, Potential: 120}

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if err := store.Skills().UpsertSkill(ctx, id, data.SkillDigging, rec); err != nil {
				b.Errorf("UpsertSkill failed: %v", err)
			}
		}
	})
}
