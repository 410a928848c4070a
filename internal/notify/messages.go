package notify

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/udisondev/skillgrowth/internal/game/skill"
)

// Message keys.
const (
	msgSkillUp      = "skill.up"
	msgSkillDown    = "skill.down"
	msgActionGained = "action.gained"
)

var messages = map[language.Tag]map[string]string{
	language.English: {
		msgSkillUp:      "%s's %s skill increases.",
		msgSkillDown:    "%s's %s skill falls off.",
		msgActionGained: "%s has learned a new ability, %s.",
	},
	language.Japanese: {
		msgSkillUp:      "%sの%sの技能が上昇した。",
		msgSkillDown:    "%sの%sの技能が下降した。",
		msgActionGained: "%sは新しい能力「%s」を習得した。",
	},
}

// Localizer renders notifications as one line of text in a locale.
type Localizer struct {
	locale  string
	printer *message.Printer
	names   Namer
}

// NewLocalizer builds a Localizer for locale ("en", "ja", "ja-JP", ...).
// Unsupported languages fall back to English.
func NewLocalizer(names Namer, locale string) (*Localizer, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}

	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for t, msgs := range messages {
		for key, text := range msgs {
			if err := b.SetString(t, key, text); err != nil {
				return nil, fmt.Errorf("register message %s/%s: %w", t, key, err)
			}
		}
	}

	base, _ := tag.Base()
	resolved := language.English
	if base.String() == "ja" {
		resolved = language.Japanese
	}

	return &Localizer{
		locale:  resolved.String(),
		printer: message.NewPrinter(resolved, message.Catalog(b)),
		names:   names,
	}, nil
}

// Locale returns the resolved locale.
func (l *Localizer) Locale() string { return l.locale }

// Line renders n.
func (l *Localizer) Line(n skill.Notification) string {
	switch n.Kind {
	case skill.NotifySkillUp:
		return l.printer.Sprintf(msgSkillUp, n.Character, l.names.Name(n.Skill, l.locale))
	case skill.NotifySkillDown:
		return l.printer.Sprintf(msgSkillDown, n.Character, l.names.Name(n.Skill, l.locale))
	case skill.NotifyActionGained:
		return l.printer.Sprintf(msgActionGained, n.Character, l.names.ActionName(n.Action, l.locale))
	default:
		return fmt.Sprintf("%s: %s", n.Character, n.Kind)
	}
}
