package skill

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/skillgrowth/internal/data"
	"github.com/udisondev/skillgrowth/internal/model"
)

const spellMagicDart data.SkillID = 414

func TestGainTriggers(t *testing.T) {
	tests := []struct {
		name    string
		role    model.Role
		env     StaticEnvironment
		vitals  model.Vitals
		learn   []data.SkillID
		event   Event
		want    map[data.SkillID]int // experience after the event
		wantExp int64                // character experience
	}{
		{
			name:    "digging siphons character exp",
			role:    model.RolePlayer,
			learn:   []data.SkillID{data.SkillDigging},
			event:   Event{Trigger: TriggerDigging},
			want:    map[data.SkillID]int{data.SkillDigging: 86},
			wantExp: 260,
		},
		{
			name:  "negotiation below threshold",
			role:  model.RolePlayer,
			learn: []data.SkillID{data.SkillNegotiation},
			event: Event{Trigger: TriggerNegotiation, Gold: 120},
			want:  map[data.SkillID]int{data.SkillNegotiation: 0},
		},
		{
			name:    "negotiation above threshold",
			role:    model.RolePlayer,
			learn:   []data.SkillID{data.SkillNegotiation},
			event:   Event{Trigger: TriggerNegotiation, Gold: 1000},
			want:    map[data.SkillID]int{data.SkillNegotiation: 78},
			wantExp: 235,
		},
		{
			name:  "casting by non-player trains casting only",
			role:  model.RoleOther,
			learn: []data.SkillID{spellMagicDart, data.SkillCasting},
			event: Event{Trigger: TriggerCasting, Spell: spellMagicDart},
			want:  map[data.SkillID]int{spellMagicDart: 0, data.SkillCasting: 13},
		},
		{
			name:  "casting by player trains spell too",
			role:  model.RolePlayer,
			learn: []data.SkillID{spellMagicDart, data.SkillCasting},
			event: Event{Trigger: TriggerCasting, Spell: spellMagicDart},
			want:  map[data.SkillID]int{spellMagicDart: 34, data.SkillCasting: 13},
		},
		{
			name:  "stealth underground",
			role:  model.RolePlayer,
			learn: []data.SkillID{data.SkillStealth},
			event: Event{Trigger: TriggerStealth},
			want:  map[data.SkillID]int{data.SkillStealth: 1},
		},
		{
			name:  "stealth overworld",
			role:  model.RolePlayer,
			env:   StaticEnvironment{Overworld: true},
			learn: []data.SkillID{data.SkillStealth},
			event: Event{Trigger: TriggerStealth},
			want:  map[data.SkillID]int{data.SkillStealth: 17},
		},
		{
			name:  "detection scales with dungeon level",
			role:  model.RolePlayer,
			env:   StaticEnvironment{Dungeon: 5},
			learn: []data.SkillID{data.SkillDetection},
			event: Event{Trigger: TriggerDetection},
			want:  map[data.SkillID]int{data.SkillDetection: 26},
		},
		{
			name:   "healing with full mana skips meditation",
			role:   model.RolePlayer,
			vitals: model.Vitals{HP: 50, MaxHP: 100, MP: 30, MaxMP: 30},
			learn:  []data.SkillID{data.SkillHealing, data.SkillMeditation},
			event:  Event{Trigger: TriggerHealing},
			want:   map[data.SkillID]int{data.SkillHealing: 12, data.SkillMeditation: 0},
		},
		{
			name:  "magic device is player only",
			role:  model.RoleAlly,
			learn: []data.SkillID{data.SkillMagicDevice},
			event: Event{Trigger: TriggerMagicDevice},
			want:  map[data.SkillID]int{data.SkillMagicDevice: 0},
		},
		{
			name:  "crafting uses the event skill",
			role:  model.RolePlayer,
			learn: []data.SkillID{177},
			event: Event{Trigger: TriggerCrafting, Skill: 177, Materials: 2},
			want:  map[data.SkillID]int{177: 78},
		},
		{
			name:  "memorization uses spell difficulty",
			role:  model.RolePlayer,
			learn: []data.SkillID{data.SkillMemorization},
			event: Event{Trigger: TriggerMemorization, Spell: spellMagicDart},
			want:  map[data.SkillID]int{data.SkillMemorization: 27},
		},
		{
			name:   "weight lifting below half load",
			role:   model.RolePlayer,
			vitals: model.Vitals{Weight: 10, MaxWeight: 100},
			learn:  []data.SkillID{data.SkillWeightLifting},
			event:  Event{Trigger: TriggerWeightLifting},
			want:   map[data.SkillID]int{data.SkillWeightLifting: 0},
		},
		{
			name:  "unlearned skill is untouched",
			role:  model.RolePlayer,
			event: Event{Trigger: TriggerFishing},
			want:  map[data.SkillID]int{data.SkillFishing: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestEngine(t, Deps{Env: tt.env})
			c := newTestCharacter(t, 1, tt.role)
			c.SetVitals(tt.vitals)
			for _, id := range tt.learn {
				c.Skills().Set(id, 1, 0, 100)
			}

			e.Gain(c, tt.event)

			for id, want := range tt.want {
				assert.Equal(t, want, c.Skills().Get(id).Experience, "skill %d", id)
			}
			if tt.wantExp != 0 {
				assert.Equal(t, tt.wantExp, c.Experience())
			}
		})
	}
}

func TestGainUnknownTriggerPanics(t *testing.T) {
	e, _ := newTestEngine(t, Deps{})
	c := newTestCharacter(t, 1, model.RolePlayer)

	assert.Panics(t, func() { e.Gain(c, Event{Trigger: 0}) })
}

func TestParseTrigger(t *testing.T) {
	all := Triggers()
	require.Len(t, all, len(gainRules))
	assert.Equal(t, TriggerDigging, all[0])
	assert.Equal(t, TriggerDisarmTrap, all[len(all)-1])

	for _, tr := range all {
		got, err := ParseTrigger(tr.String())
		require.NoError(t, err)
		assert.Equal(t, tr, got)
	}

	_, err := ParseTrigger("juggling")
	assert.Error(t, err)
	assert.Equal(t, "trigger(99)", Trigger(99).String())
}
