package models

// Status is the verdict of one check.
type Status string

const (
	StatusPass    Status = "pass"
	StatusWarning Status = "warning"
	StatusFail    Status = "fail"
)

// Level buckets a score.
type Level string

const (
	LevelPoor      Level = "poor"
	LevelOK        Level = "ok"
	LevelGood      Level = "good"
	LevelExcellent Level = "excellent"
)

// Finding is one rule's verdict.
type Finding struct {
	ID      string    `json:"id"`
	Group   RuleGroup `json:"group"`
	Label   string    `json:"label"`
	Status  Status    `json:"status"`
	Message string    `json:"message"`
	Tip     string    `json:"tip,omitempty"`
}

type AnalysisResult struct {
	Score  int       `json:"score"`
	Level  Level     `json:"level"`
	Checks []Finding `json:"checks"`
}

// LevelForScore maps a 0-100 score onto its level.
func LevelForScore(score int) Level {
	switch {
	case score >= 80:
		return LevelExcellent
	case score >= 60:
		return LevelGood
	case score >= 40:
		return LevelOK
	default:
		return LevelPoor
	}
}

// Counts returns the number of findings per status.
func (r AnalysisResult) Counts() map[Status]int {
	counts := map[Status]int{StatusPass: 0, StatusWarning: 0, StatusFail: 0}
	for _, c := range r.Checks {
		counts[c.Status]++
	}
	return counts
}
