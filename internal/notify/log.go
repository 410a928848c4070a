package notify

import (
	"log/slog"

	"github.com/udisondev/skillgrowth/internal/game/skill"
)

// Log writes notifications as structured slog records.
type Log struct {
	log *slog.Logger
}

// NewLog creates a presenter over logger; nil means slog.Default().
func NewLog(logger *slog.Logger) *Log {
	if logger == nil {
		logger = slog.Default()
	}
	return &Log{log: logger}
}

func (l *Log) PlaySound(id string) {
	l.log.Debug("sound", "id", id)
}

func (l *Log) HaltInput() {
	l.log.Debug("input halt requested")
}

func (l *Log) Notify(n skill.Notification) {
	attrs := []any{
		"id", n.ID,
		"kind", n.Kind,
		"character", n.Character,
	}
	if n.Kind == skill.NotifyActionGained {
		attrs = append(attrs, "action", n.Action)
	} else {
		attrs = append(attrs, "skill", n.Skill, "level", n.Level, "delta", n.Delta)
	}
	l.log.Info("skill notification", attrs...)
}
