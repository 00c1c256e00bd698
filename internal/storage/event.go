package storage

// Event is a single scheduled interview. Date is an ISO calendar date
// (YYYY-MM-DD); StartTime and EndTime are 12-hour wall-clock strings like
// "5:00 PM". EndTime is informational only and is never validated against
// StartTime.
type Event struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Interviewer string `json:"interviewer"`
	Date        string `json:"date"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Link        string `json:"link,omitempty"`
}
