// Package gui is the interactive wizard the ingestion tool shows when it is
// started without a --kind.
package gui

import (
	"errors"

	"github.com/FlagBrew/local-dex/internal/models"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// ErrCancelled is returned by Start when the operator leaves the wizard.
var ErrCancelled = errors.New("wizard cancelled")

// Plan is what the operator chose to ingest. For a full run Kinds holds every
// kind and each uses its default range.
type Plan struct {
	All   bool
	Kinds []models.Kind
	Range models.IDRange
}

type Gui struct {
	app       *tview.Application
	config    *models.Config
	plan      Plan
	confirmed bool
}

func New(config *models.Config) *Gui {
	g := &Gui{
		app:    tview.NewApplication(),
		config: config,
	}
	if g.config == nil {
		g.config = models.DefaultConfig()
	}

	g.app.EnableMouse(true)
	g.Init()
	return g
}

func (g *Gui) Init() {
	pages := tview.NewPages()
	pages.AddPage("intro", g.introPage(pages), true, true)
	pages.AddPage("kind", g.kindSelection(pages), true, false)

	pages.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape {
			g.app.Stop()
			return nil
		}
		return event
	})

	g.app.SetRoot(pages, true)
}

// Start runs the wizard until the operator confirms a plan or leaves.
func (g *Gui) Start() (Plan, error) {
	if err := g.app.Run(); err != nil {
		return Plan{}, err
	}
	if !g.confirmed {
		return Plan{}, ErrCancelled
	}
	return g.plan, nil
}

func (g *Gui) Stop() {
	g.app.Stop()
}
