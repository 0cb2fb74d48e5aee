package tui

import "github.com/covergap/covergap/internal/domain"

// Message types for the Bubble Tea update cycle

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}

// ProfileLoadedMsg signals the input profile has been loaded
type ProfileLoadedMsg struct {
	Profile *domain.Profile
}

// AnalysisCompleteMsg carries a finished what-if analysis run
type AnalysisCompleteMsg struct {
	Report *domain.AnalysisReport
	Err    error
}
