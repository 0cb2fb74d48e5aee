package tui

import (
	"fmt"
	"strings"

	"github.com/covergap/covergap/internal/domain"
	"github.com/covergap/covergap/internal/output"
)

// View renders the current state of the application
func (m Model) View() string {
	if m.err != nil {
		return appStyle.Render(errorStyle.Render("Error: "+m.err.Error()) +
			"\n\n" + helpStyle.Render("r: reload  q: quit"))
	}
	if m.profile == nil || m.report == nil {
		return appStyle.Render(titleStyle.Render("Coverage gap explorer") + "\n\nLoading profile...")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Coverage gap explorer (%s)", m.report.GeneratedFor)))
	b.WriteString("\n")

	b.WriteString(m.renderScore())
	b.WriteString(m.renderSliders())
	b.WriteString(m.renderProjection())
	b.WriteString(m.renderPlan())

	loading := ""
	if m.loading {
		loading = "  recalculating..."
	}
	b.WriteString(helpStyle.Render(
		"tab/up/down: focus  left/right: adjust  r: reload  q: quit" + loading))

	return appStyle.Render(b.String())
}

func (m Model) renderScore() string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("Coverage score"))
	b.WriteString("\n")

	score := m.report.Analysis.Score
	b.WriteString(m.scoreBar.ViewAs(float64(score) / 100))
	b.WriteString(fmt.Sprintf("  %d/100", score))

	gaps := m.report.Analysis.GapCount
	if gaps > 0 {
		b.WriteString(negativeStyle.Render(fmt.Sprintf("  %d gapped categories", gaps)))
	} else {
		b.WriteString(positiveStyle.Render("  no gaps"))
	}
	b.WriteString("\n")

	for _, risk := range m.report.HealthRisks {
		b.WriteString(fmt.Sprintf("%s %s\n",
			labelStyle.Render(string(risk.Category)+" risk"),
			valueStyle.Render(fmt.Sprintf("+%d", risk.RiskLevel))))
	}
	return b.String()
}

func (m Model) renderSliders() string {
	if m.sliders[focusRetirementAge] == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(sectionStyle.Render("What-if parameters"))
	b.WriteString("\n")
	for i, s := range m.sliders {
		b.WriteString(s.Render(i == m.focus))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderProjection() string {
	if len(m.report.Projection) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(sectionStyle.Render("Net worth to age 90"))
	b.WriteString("\n")
	b.WriteString(m.chart.Render(m.report.Projection))
	b.WriteString("\n")

	last := m.report.Projection[len(m.report.Projection)-1]
	style := positiveStyle
	if last.NetWorth.IsNegative() {
		style = negativeStyle
	}
	b.WriteString(fmt.Sprintf("%s %s\n",
		labelStyle.Render(fmt.Sprintf("At age %d", last.Age)),
		style.Render(output.FormatManwon(last.NetWorth))))

	if m.report.Financial != nil {
		b.WriteString(fmt.Sprintf("%s %s\n",
			labelStyle.Render("Freedom target"),
			valueStyle.Render(output.FormatManwon(m.report.Financial.TargetNetWorth))))
	}
	return b.String()
}

func (m Model) renderPlan() string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("Action plan"))
	b.WriteString("\n")
	b.WriteString(renderBucket("Short", m.report.Plan.ShortTerm))
	b.WriteString(renderBucket("Mid", m.report.Plan.MidTerm))
	b.WriteString(renderBucket("Long", m.report.Plan.LongTerm))
	return b.String()
}

func renderBucket(name string, recs []domain.Recommendation) string {
	var b strings.Builder
	for _, r := range recs {
		b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render(name), r.Title))
	}
	return b.String()
}
