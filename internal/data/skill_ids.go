package data

import "fmt"

// SkillID: идентификатор скилла. Пространство плотное: [0, MaxSkillID).
// Диапазоны значимы для вызывающего кода, см. Kind.
type SkillID int

// Limits of a skill record.
const (
	MaxSkillID     = 600
	MaxSkillLevel  = 2000
	MaxPotential   = 400
	MinPotential   = 1
	ExpPerLevel    = 1000
	SpellIDStart   = 400
	SkillIDStart   = 100
	ResistIDStart  = 50
	ResistIDEnd    = 61 // exclusive
	BasicAttrStart = 10
	BasicAttrEnd   = 20 // exclusive
)

// Reserved identifiers with special initialization or progression rules.
const (
	SkillLife  SkillID = 2
	SkillMana  SkillID = 3
	SkillStr   SkillID = 10
	SkillCon   SkillID = 11
	SkillDex   SkillID = 12
	SkillPer   SkillID = 13
	SkillLer   SkillID = 14
	SkillWil   SkillID = 15
	SkillMag   SkillID = 16
	SkillChr   SkillID = 17
	SkillSpeed SkillID = 18
	SkillLuck  SkillID = 19

	SkillResistMagic SkillID = 60

	SkillLiteracy      SkillID = 150
	SkillFaith         SkillID = 152
	SkillWeightLifting SkillID = 153
	SkillHealing       SkillID = 154
	SkillMeditation    SkillID = 155
	SkillNegotiation   SkillID = 156
	SkillStealth       SkillID = 157
	SkillLockPicking   SkillID = 158
	SkillDetection     SkillID = 159
	SkillInvesting     SkillID = 160
	SkillDigging       SkillID = 163
	SkillManaCapacity  SkillID = 164
	SkillMemorization  SkillID = 165
	SkillCasting       SkillID = 172
	SkillMagicDevice   SkillID = 174
	SkillDisarmTrap    SkillID = 175
	SkillFishing       SkillID = 185
)

// Kind partitions the identifier space.
type Kind uint8

const (
	KindAttribute Kind = iota
	KindResistance
	KindSkill
	KindSpell
)

func (k Kind) String() string {
	switch k {
	case KindAttribute:
		return "attribute"
	case KindResistance:
		return "resistance"
	case KindSkill:
		return "skill"
	case KindSpell:
		return "spell"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Valid reports whether id addresses a slot of the skill table.
func (id SkillID) Valid() bool {
	return id >= 0 && id < MaxSkillID
}

// Kind returns the range id belongs to.
// [0,50) attributes, [50,100) resistances, [100,400) skills, [400,600) spells.
func (id SkillID) Kind() Kind {
	switch {
	case id >= SpellIDStart:
		return KindSpell
	case id >= SkillIDStart:
		return KindSkill
	case id >= ResistIDStart:
		return KindResistance
	default:
		return KindAttribute
	}
}

// IsSpell reports whether id is in the spell range.
func (id SkillID) IsSpell() bool {
	return id.Kind() == KindSpell
}

// IsBasicAttribute reports whether id is one of STR..LUCK, the attributes
// that carry a per-character growth buff.
func (id SkillID) IsBasicAttribute() bool {
	return id >= BasicAttrStart && id < BasicAttrEnd
}

// GrowthBuffIndex returns the index into a character's growth buff array.
// Only meaningful when IsBasicAttribute is true.
func (id SkillID) GrowthBuffIndex() int {
	return int(id - BasicAttrStart)
}

// FeedsCharacterExp reports whether gains on id may be siphoned into the
// character's overall experience pool (ordinary skills and spells).
func (id SkillID) FeedsCharacterExp() bool {
	return id >= SkillIDStart
}

// HasFixedGrowth reports whether id skips the potential mechanic on
// initialization (life, mana and luck scale linearly).
func (id SkillID) HasFixedGrowth() bool {
	return id == SkillLife || id == SkillMana || id == SkillLuck
}

// ResistanceIDs returns the elemental resistance identifiers in order.
func ResistanceIDs() []SkillID {
	ids := make([]SkillID, 0, ResistIDEnd-ResistIDStart)
	for id := SkillID(ResistIDStart); id < ResistIDEnd; id++ {
		ids = append(ids, id)
	}
	return ids
}
