package model

import "time"

// StatusChanged is published on the status-changed topic after a status change commits.
// Events are keyed by SubjectID.
type StatusChanged struct {
	Kind      Kind      `json:"kind"`
	SubjectID string    `json:"subject_id"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Progress  int       `json:"progress"`
	ChangedBy string    `json:"changed_by"`
	ChangedAt time.Time `json:"changed_at"`
}
