package gui

import (
	"fmt"
	"strconv"
	"unicode"

	"github.com/FlagBrew/local-dex/internal/models"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const helpText = "[red]ESC - exit[-:-:-:-] [yellow] Enter - continue"

func (g *Gui) introPage(p *tview.Pages) tview.Primitive {
	textView := tview.NewTextView().
		SetDynamicColors(true).
		SetWordWrap(true)

	textView.SetText(fmt.Sprintf(`Welcome to the local-dex ingestion tool.

Records are fetched one at a time from [::b]%s[-:-:-:-] and stored in the configured database:

%s

Records that are already stored are skipped, so a run can safely be repeated.

Press [yellow]enter[-:-:-:-] to choose what to ingest, or [red]esc[-:-:-:-] to leave.
`, g.config.Ingest.BaseURL, databaseSummary(&g.config.Database)))

	textView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEnter {
			p.SwitchToPage("kind")
		}
		return event
	})

	frame := tview.NewFrame(textView)
	frame.AddText(helpText, false, tview.AlignLeft, tcell.ColorYellow)
	frame.SetBorder(true).SetTitle("local-dex")
	return frame
}

func (g *Gui) kindSelection(p *tview.Pages) tview.Primitive {
	list := tview.NewList()

	choose := func(kind models.Kind) func() {
		return func() {
			g.plan = Plan{Kinds: []models.Kind{kind}, Range: kind.DefaultRange()}
			p.AddPage("range", g.rangePage(p, kind), true, false)
			p.SwitchToPage("range")
		}
	}

	list.AddItem("Pokémon", rangeHint(models.KindPokemon), '1', choose(models.KindPokemon))
	list.AddItem("Moves", rangeHint(models.KindMove), '2', choose(models.KindMove))
	list.AddItem("Abilities", rangeHint(models.KindAbility), '3', choose(models.KindAbility))
	list.AddItem("Items", rangeHint(models.KindItem), '4', choose(models.KindItem))
	list.AddItem("Everything", "Every kind above over its default range, in that order", '5', func() {
		g.plan = Plan{All: true, Kinds: models.Kinds}
		p.AddPage("confirm", g.confirmationPage(p), true, false)
		p.SwitchToPage("confirm")
	})

	frame := tview.NewFrame(list)
	frame.SetBorder(true)
	frame.SetTitle("local-dex - Choosing Data")
	frame.AddText("Please select what you would like to ingest", true, tview.AlignLeft, tcell.ColorYellow)
	frame.AddText(helpText, false, tview.AlignLeft, tcell.ColorYellow)
	return frame
}

func (g *Gui) rangePage(p *tview.Pages, kind models.Kind) tview.Primitive {
	form := tview.NewForm()
	frame := tview.NewFrame(form)

	def := kind.DefaultRange()
	startText := strconv.Itoa(def.Start)
	endText := strconv.Itoa(def.End)

	draw := func() {
		frame.Clear()
		frame.AddText(fmt.Sprintf("Choose the %s ids to ingest (both ends included)", kind), true, tview.AlignLeft, tcell.ColorYellow)
		frame.AddText("[red]ESC - exit[-:-:-:-] [yellow] Enter - next input/submit [orange] (Shift+)Tab - switch inputs", false, tview.AlignLeft, tcell.ColorYellow)
	}
	draw()

	digitsOnly := func(_ string, lastChar rune) bool {
		return unicode.IsDigit(lastChar)
	}

	form.AddInputField("Start ID", startText, 10, digitsOnly, func(text string) {
		startText = text
	})
	form.AddInputField("End ID", endText, 10, digitsOnly, func(text string) {
		endText = text
	})

	form.AddButton("Submit", func() {
		draw()

		r, errs := parseRange(startText, endText)
		if len(errs) > 0 {
			frame.AddText("Errors: ", true, tview.AlignLeft, tcell.ColorYellow)
			for _, v := range errs {
				frame.AddText(v, true, tview.AlignLeft, tcell.ColorRed)
			}
			return
		}

		g.plan.Range = r
		p.AddPage("confirm", g.confirmationPage(p), true, false)
		p.SwitchToPage("confirm")
	})
	form.AddButton("Back", func() {
		p.SwitchToPage("kind")
	})

	frame.SetBorder(true)
	frame.SetTitle("local-dex - Choosing Range")
	return frame
}

func (g *Gui) confirmationPage(p *tview.Pages) tview.Primitive {
	form := tview.NewForm()

	form.AddTextView("Ingest", planSummary(g.plan), 0, 0, true, true)
	form.AddTextView("Database", databaseSummary(&g.config.Database), 0, 0, true, true)
	form.AddTextView("Source", fmt.Sprintf(`URL: %s
Retries: %d, retry delay: %gs, delay between requests: %gs
`, g.config.Ingest.BaseURL, g.config.Ingest.MaxRetries, g.config.Ingest.RetryDelay, g.config.Ingest.RequestDelay), 0, 0, true, true)

	form.AddButton("Start", func() {
		g.confirmed = true
		g.Stop()
	})
	form.AddButton("Edit", func() {
		p.SwitchToPage("kind")
	})

	frame := tview.NewFrame(form)
	frame.AddText("Please review the details below and press start, or edit to choose again", true, tview.AlignLeft, tcell.ColorYellow)
	frame.AddText("[red]ESC - exit[-:-:-:-] [yellow] Enter - submit [orange] (Shift+)Tab - switch buttons", false, tview.AlignLeft, tcell.ColorYellow)
	frame.SetBorder(true)
	frame.SetTitle("local-dex - Review")
	return frame
}
