package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/covergap/covergap/internal/calculation"
	"github.com/covergap/covergap/internal/config"
	"github.com/covergap/covergap/internal/domain"
)

// Focusable what-if parameters, in tab order.
const (
	focusRetirementAge = iota
	focusIncome
	focusExpenses
	focusCount
)

// Model is the what-if explorer state: a loaded profile, three adjustable
// parameters and the report produced from the current parameter values.
type Model struct {
	profilePath string
	profile     *domain.Profile
	mode        domain.Mode

	engine *calculation.AnalysisEngine

	sliders [focusCount]*slider
	focus   int

	scoreBar progress.Model
	chart    *netWorthChart

	report *domain.AnalysisReport

	width  int
	height int

	loading bool
	err     error
}

// NewModel creates the explorer for a profile file.
func NewModel(profilePath string, mode domain.Mode) Model {
	return Model{
		profilePath: profilePath,
		mode:        mode,
		engine:      calculation.NewAnalysisEngine(),
		scoreBar:    progress.New(progress.WithDefaultGradient()),
		chart:       newNetWorthChart(),
		loading:     true,
		width:       80,
		height:      24,
	}
}

// Init loads the profile file.
func (m Model) Init() tea.Cmd {
	return loadProfileCmd(m.profilePath)
}

func loadProfileCmd(path string) tea.Cmd {
	return func() tea.Msg {
		parser := config.NewInputParser()
		profile, err := parser.LoadFromFile(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return ProfileLoadedMsg{Profile: profile}
	}
}

// initSliders seeds the what-if sliders from the loaded profile. Without a
// finance section the sliders stay nil and the explorer is score-only.
func (m *Model) initSliders() {
	if m.profile.Finance == nil {
		return
	}
	fin := m.profile.Finance
	income, _ := fin.CurrentIncome.Float64()
	expenses, _ := fin.CurrentExpenses.Float64()

	m.sliders[focusRetirementAge] = newSlider("Retirement age",
		float64(fin.RetirementAge), float64(fin.Age+1), 80, 1, "yrs")
	m.sliders[focusIncome] = newSlider("Monthly income",
		income, 0, income*2+100, 10, "man-won")
	m.sliders[focusExpenses] = newSlider("Monthly expenses",
		expenses, 0, expenses*2+100, 10, "man-won")
}

// whatIfProfile applies the current slider values to a copy of the loaded
// profile. The original stays untouched so resets are cheap.
func (m Model) whatIfProfile() *domain.Profile {
	p := *m.profile
	if p.Finance != nil && m.sliders[focusRetirementAge] != nil {
		fin := *p.Finance
		fin.RetirementAge = int(m.sliders[focusRetirementAge].Value)
		fin.CurrentIncome = decimal.NewFromFloat(m.sliders[focusIncome].Value)
		fin.CurrentExpenses = decimal.NewFromFloat(m.sliders[focusExpenses].Value)
		p.Finance = &fin
	}
	return &p
}

func analyzeCmd(engine *calculation.AnalysisEngine, profile *domain.Profile, mode domain.Mode) tea.Cmd {
	return func() tea.Msg {
		report, err := engine.RunAnalysis(context.Background(), profile, mode)
		return AnalysisCompleteMsg{Report: report, Err: err}
	}
}
