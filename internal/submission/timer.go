// Package submission scores submission timeliness against the lab deadline.
package submission

import "time"

// Timer compares submission timestamps to a fixed deadline.
type Timer struct {
	Deadline  time.Time
	Max       float64
	LateScore float64
}

// Result is the timeliness outcome for one grading run.
type Result struct {
	SubmittedAt time.Time `json:"submitted_at"`
	Verified    bool      `json:"verified"`
	OnTime      bool      `json:"on_time"`
	Score       float64   `json:"score"`
	Max         float64   `json:"max"`
}

// Score evaluates a submission timestamp. An unverified timestamp (the
// source could not be read) is treated as late: the fail-safe leans toward
// the stricter outcome instead of erroring.
func (t Timer) Score(submittedAt time.Time, verified bool) Result {
	result := Result{
		SubmittedAt: submittedAt,
		Verified:    verified,
		Max:         t.Max,
		Score:       t.LateScore,
	}
	if verified && !submittedAt.After(t.Deadline) {
		result.OnTime = true
		result.Score = t.Max
	}
	return result
}
