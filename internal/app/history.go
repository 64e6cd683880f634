package app

import (
	"fmt"

	"github.com/vovakirdan/tui-trainer/internal/core"
	"github.com/vovakirdan/tui-trainer/internal/menu"
	"github.com/vovakirdan/tui-trainer/internal/registry"
	"github.com/vovakirdan/tui-trainer/internal/storage"
)

// History layout in logical units.
const (
	historyTitleY  = 60
	historyStartY  = 120
	historySpacing = 30
	historyMarginX = 50
	historyBackGap = 60 // Distance of the Back button from the bottom edge
)

// History screen options.
const (
	LabelBack  = "Back"
	LabelClear = "Clear History"
)

// historyView is a snapshot of the run journal with Back and Clear buttons.
type historyView struct {
	lines []string
	back  *menu.Selector
}

func newHistoryView(j *storage.Store, activities []registry.GameInfo, fieldH float64) (*historyView, error) {
	back, err := menu.New("History", []string{LabelBack, LabelClear},
		menu.WithTitleY(historyTitleY), menu.WithStartY(fieldH-historyBackGap-menu.OptionSpacing))
	if err != nil {
		return nil, err
	}

	titles := make(map[string]string, len(activities))
	var lines []string
	for _, info := range activities {
		titles[info.ID] = info.Title
		gs, err := j.GetGameStats(info.ID)
		if err != nil {
			return nil, err
		}
		if gs == nil {
			lines = append(lines, fmt.Sprintf("%s: no runs yet", info.Title))
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %d %s, best %s, average %s",
			info.Title, gs.RunsCount, plural(gs.RunsCount, "run", "runs"),
			formatValue(gs.Best, gs.Unit), formatValue(gs.Average, gs.Unit)))
	}

	// Whatever rows remain above the Back button go to recent runs.
	capacity := int((fieldH-historyBackGap-menu.OptionSpacing-historySpacing-historyStartY)/historySpacing) + 1
	limit := capacity - len(lines) - 2
	if limit < 1 {
		limit = 1
	}
	runs, err := j.RecentRuns(limit)
	if err != nil {
		return nil, err
	}

	lines = append(lines, "")
	if len(runs) == 0 {
		lines = append(lines, "No runs yet this session.")
	} else {
		lines = append(lines, "Recent runs:")
	}
	for _, r := range runs {
		title := titles[r.GameID]
		if title == "" {
			title = r.GameID
		}
		lines = append(lines, fmt.Sprintf("%s  %s  %s  %s",
			r.CreatedAt.Format("15:04:05"), title, formatValue(r.Value, r.Unit), r.Detail))
	}

	return &historyView{lines: lines, back: back}, nil
}

// Step returns StateResolved once an option is clicked or Escape is
// pressed; Choice tells which.
func (v *historyView) Step(events []core.Event) menu.State {
	for _, ev := range events {
		if ev.Kind == core.EventQuit {
			break
		}
		if ev.Kind == core.EventKeyDown && ev.Key == core.KeyEscape {
			return menu.StateResolved
		}
	}
	return v.back.Step(events)
}

// Choice returns the clicked option, or LabelBack after Escape.
func (v *historyView) Choice() string {
	if c, ok := v.back.Choice(); ok {
		return c
	}
	return LabelBack
}

// Render draws the journal lines and the Back button.
func (v *historyView) Render(dst core.Renderer, fieldW float64, theme core.Theme) {
	fg := theme.Foreground()
	v.back.Render(dst, fieldW, theme)
	for i, line := range v.lines {
		y := float64(historyStartY + i*historySpacing)
		dst.DrawText(line, core.Pt(historyMarginX, y), core.AnchorTopLeft, fg)
	}
}

// Lines returns the rendered text lines.
func (v *historyView) Lines() []string {
	return v.lines
}

// formatValue renders a result value with its unit, truncated like the
// best-scores panel.
func formatValue(v float64, unit string) string {
	if storage.LowerIsBetter(unit) {
		return fmt.Sprintf("%d ms", int(v))
	}
	return fmt.Sprintf("%d WPM", int(v))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
