package skill

import (
	"io"
	"log/slog"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/udisondev/skillgrowth/internal/data"
	"github.com/udisondev/skillgrowth/internal/game/formula"
	"github.com/udisondev/skillgrowth/internal/model"
)

// recordingPresenter captures presentation requests.
type recordingPresenter struct {
	sounds        []string
	halts         int
	notifications []Notification
}

func (p *recordingPresenter) PlaySound(id string)   { p.sounds = append(p.sounds, id) }
func (p *recordingPresenter) HaltInput()            { p.halts++ }
func (p *recordingPresenter) Notify(n Notification) { p.notifications = append(p.notifications, n) }

// scriptedRand returns queued values, then zero.
type scriptedRand struct {
	values []int
	calls  []int
}

func (r *scriptedRand) IntN(n int) int {
	r.calls = append(r.calls, n)
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[0]
	r.values = r.values[1:]
	return v
}

type hiddenVisibility struct{}

func (hiddenVisibility) IsVisible(Character) bool { return false }

// fakeCatalog relates skills through an explicit map.
type fakeCatalog struct {
	related map[data.SkillID]data.SkillID
}

func (f fakeCatalog) RelatedAttribute(id data.SkillID) (data.SkillID, bool) {
	attr, ok := f.related[id]
	return attr, ok
}

func (fakeCatalog) Cost(data.SkillID) int       { return 10 }
func (fakeCatalog) Difficulty(data.SkillID) int { return 100 }

// fullShareFormulas forwards the whole gain to related attributes.
type fullShareFormulas struct{ formula.Default }

func (fullShareFormulas) RelatedAttributeExp(exp, _ int) int { return exp }

func newSeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func loadCatalog(t *testing.T) *data.SkillCatalog {
	t.Helper()
	c, err := data.LoadSkillCatalog()
	require.NoError(t, err)
	return c
}

// newTestEngine builds an engine over the embedded catalog.
// Zero fields of d are filled with test defaults.
func newTestEngine(t *testing.T, d Deps) (*Engine, *recordingPresenter) {
	t.Helper()
	p := &recordingPresenter{}
	if d.Catalog == nil {
		d.Catalog = loadCatalog(t)
	}
	if d.Presenter == nil {
		d.Presenter = p
	}
	if d.Rand == nil {
		d.Rand = &scriptedRand{}
	}
	if d.Logger == nil {
		d.Logger = discardLogger()
	}
	e, err := NewEngine(d)
	require.NoError(t, err)
	return e, p
}

func newTestCharacter(t *testing.T, level int, role model.Role) *model.Character {
	t.Helper()
	c, err := model.NewCharacter("Mia", level, role)
	require.NoError(t, err)
	return c
}
