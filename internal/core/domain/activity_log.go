package domain

import "time"

// ActivityAction enumerates the administrative actions recorded in the audit trail.
type ActivityAction string

const (
	ActionLogin  ActivityAction = "LOGIN"
	ActionLogout ActivityAction = "LOGOUT"
	ActionCreate ActivityAction = "CREATE"
	ActionUpdate ActivityAction = "UPDATE"
	ActionDelete ActivityAction = "DELETE"
)

// ActivityLog is an append-only record of an administrative mutation.
// Entries are never updated or deleted after creation.
type ActivityLog struct {
	LogID     string         `json:"logID"`
	AdminID   string         `json:"adminID"`
	AdminName string         `json:"adminName"` // denormalized snapshot at write time
	Action    ActivityAction `json:"action"`
	Target    string         `json:"target"` // entity type name, e.g. "Donor"
	Details   string         `json:"details"`
	Timestamp time.Time      `json:"timestamp"`
}
