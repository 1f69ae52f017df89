package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mwiater/evalscope/internal/explore"
	"github.com/mwiater/evalscope/internal/util"
)

var (
	titleStyle   = lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230")).Padding(0, 1)
	chipStyle    = lipgloss.NewStyle().Background(lipgloss.Color("0")).Foreground(lipgloss.Color("252")).Padding(0, 1).MarginRight(1)
	focusStyle   = lipgloss.NewStyle().Background(lipgloss.Color("205")).Foreground(lipgloss.Color("0")).Padding(0, 1).MarginRight(1)
	headerStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	detailStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	percentWidth = 8
)

// View renders the application's UI based on the current state of the model.
func (m *model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	switch m.state {
	case viewLoading:
		return fmt.Sprintf("\n  %s Loading evaluation results...\n", m.spinner.View())
	case viewPicker:
		return lipgloss.NewStyle().Margin(1, 2).Render(m.picker.View())
	default:
		return m.browseView()
	}
}

// browseView renders the filter bar, the active view body, and the footer.
func (m *model) browseView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("evalscope — benchmark explorer"))
	b.WriteString("\n\n")
	b.WriteString(m.filterBar())
	b.WriteString("\n\n")

	if m.engine.Mode() == explore.ViewAggregate {
		b.WriteString(m.aggregateBody())
	} else {
		b.WriteString(m.listBody())
	}

	b.WriteString("\n")
	b.WriteString(m.footer())
	return b.String()
}

// filterBar shows the five dimension selections, outer to inner, with the
// focused one highlighted.
func (m *model) filterBar() string {
	var chips []string
	for i, d := range explore.DimensionOrder {
		label := fmt.Sprintf("%s: %s", d, m.engine.Selection(d))
		if i == m.focus {
			chips = append(chips, focusStyle.Render(label))
		} else {
			chips = append(chips, chipStyle.Render(label))
		}
	}

	mode := "list"
	sortLabel := "acc desc"
	if m.engine.Mode() == explore.ViewAggregate {
		mode = "aggregate"
		sortLabel = "-"
	} else if m.engine.Sort() == explore.SortAscending {
		sortLabel = "acc asc"
	}
	chips = append(chips, chipStyle.Render("view: "+mode), chipStyle.Render("sort: "+sortLabel))
	return lipgloss.JoinHorizontal(lipgloss.Top, chips...)
}

// listBody renders the current page of the filtered record list.
func (m *model) listBody() string {
	view := m.engine.FullView()
	if len(view) == 0 {
		return statusStyle.Render("  No records match the current filters.")
	}

	start, end := m.pager.Window(len(view))

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%s %s %s %s %s",
		util.PadRight("MODEL", 34),
		util.PadRight("BENCHMARK", 22),
		util.PadRight("TECHNIQUE", 12),
		util.PadRight("ACC%", percentWidth),
		util.PadRight("CORRECT", 12))))
	b.WriteString("\n")

	for _, r := range view[start:end] {
		b.WriteString(fmt.Sprintf("%s %s %s %s %s\n",
			util.PadRight(r.ModelName, 34),
			util.PadRight(r.BenchmarkName, 22),
			util.PadRight(r.TechniqueLabel(), 12),
			util.PadRight(formatPercent(r.AccuracyPercent), percentWidth),
			util.PadRight(fmt.Sprintf("%d/%d", r.Correct, r.Total), 12)))
	}
	b.WriteString(statusStyle.Render(fmt.Sprintf("\n  %d records", len(view))))
	return b.String()
}

// aggregateBody renders per-model averages plus the detail panel for the
// top-average model.
func (m *model) aggregateBody() string {
	population := m.engine.AggregateView()
	summaries := explore.Aggregate(population)
	if len(summaries) == 0 {
		return statusStyle.Render("  No records match the current filters.")
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%s %s %s %s %s",
		util.PadRight("MODEL", 34),
		util.PadRight("RUNS", 6),
		util.PadRight("AVG%", percentWidth),
		util.PadRight("BEST", 26),
		util.PadRight("WORST", 26))))
	b.WriteString("\n")

	for _, s := range summaries {
		b.WriteString(fmt.Sprintf("%s %s %s %s %s\n",
			util.PadRight(s.ModelName, 34),
			util.PadRight(strconv.Itoa(s.BenchmarkCount), 6),
			util.PadRight(formatPercent(s.Average), percentWidth),
			util.PadRight(fmt.Sprintf("%s (%s)", s.Best.BenchmarkLabel, formatPercent(s.Best.Accuracy)), 26),
			util.PadRight(fmt.Sprintf("%s (%s)", s.Worst.BenchmarkLabel, formatPercent(s.Worst.Accuracy)), 26)))
	}

	if top, ok := explore.TopModel(summaries); ok {
		b.WriteString(detailStyle.Render(fmt.Sprintf("\n  Top model: %s (avg %s)\n", top.ModelName, formatPercent(top.Average))))
		for _, score := range explore.DetailBenchmarks(population, top.ModelName) {
			b.WriteString(fmt.Sprintf("    %s %s\n",
				util.PadRight(score.BenchmarkLabel, 30),
				formatPercent(score.Accuracy)))
		}
	}
	return b.String()
}

// footer renders the pager indicator or active page input, the status line,
// and the key help.
func (m *model) footer() string {
	var b strings.Builder

	if m.engine.Mode() == explore.ViewList {
		n := len(m.engine.FullView())
		if m.typingPage {
			b.WriteString(m.pageInput.View())
		} else {
			b.WriteString(statusStyle.Render("Page " + m.pager.Indicator(n)))
		}
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("←/→ focus filter · enter pick · v view · s sort · [/] page · g goto · j export json · c export csv · r reload · q quit"))
	return b.String()
}

func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
