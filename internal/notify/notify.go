// Package notify contains presenters that turn skill engine notifications
// into console text, structured logs and metrics.
package notify

import (
	"github.com/udisondev/skillgrowth/internal/data"
	"github.com/udisondev/skillgrowth/internal/game/skill"
)

// Namer resolves display names. *data.SkillCatalog implements it.
type Namer interface {
	Name(id data.SkillID, locale string) string
	ActionName(key, locale string) string
}

// Fanout forwards every request to each presenter in order.
type Fanout []skill.Presenter

func (f Fanout) PlaySound(id string) {
	for _, p := range f {
		p.PlaySound(id)
	}
}

func (f Fanout) HaltInput() {
	for _, p := range f {
		p.HaltInput()
	}
}

func (f Fanout) Notify(n skill.Notification) {
	for _, p := range f {
		p.Notify(n)
	}
}
