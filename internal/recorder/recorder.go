package recorder

import "github.com/covergap/covergap/internal/domain"

// RunSnapshot captures one completed analysis run for later review.
type RunSnapshot struct {
	UserName string
	Age      int
	Gender   domain.Gender
	Mode     domain.Mode
	Score    int64
	GapCount int
	Risks    []domain.HealthRisk
	Report   *domain.AnalysisReport
}

// Recorder persists analysis history. Implementations must be safe for
// concurrent use.
type Recorder interface {
	RecordRun(snap *RunSnapshot) error
	RecentRuns(limit int) ([]RunRecord, error)
	Close() error
}

// RunRecord is a stored analysis run as read back from the database.
type RunRecord struct {
	ID        int64
	Timestamp int64
	UserName  string
	Age       int
	Gender    string
	Mode      string
	Score     int64
	GapCount  int
	RiskTotal int64
}
