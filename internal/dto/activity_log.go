package dto

import (
	"time"

	"github.com/shantodev/temple_donation_app/internal/core/domain"
)

// ListActivityLogsParams defines query parameters for the audit trail listing.
type ListActivityLogsParams struct {
	Search string `form:"search"`
	Page   int    `form:"page,default=1"`
	Limit  int    `form:"limit,default=20"`
}

// ActivityLogResponse is one audit trail entry.
type ActivityLogResponse struct {
	LogID     string                `json:"logID"`
	AdminID   string                `json:"adminID"`
	AdminName string                `json:"adminName"`
	Action    domain.ActivityAction `json:"action"`
	Target    string                `json:"target"`
	Details   string                `json:"details"`
	Timestamp time.Time             `json:"timestamp"`
}

// ListActivityLogsResponse wraps an audit trail page.
type ListActivityLogsResponse struct {
	Logs       []ActivityLogResponse `json:"logs"`
	Pagination Pagination            `json:"pagination"`
}

// ToActivityLogResponse converts a domain.ActivityLog to its response DTO.
func ToActivityLogResponse(l *domain.ActivityLog) ActivityLogResponse {
	return ActivityLogResponse{
		LogID:     l.LogID,
		AdminID:   l.AdminID,
		AdminName: l.AdminName,
		Action:    l.Action,
		Target:    l.Target,
		Details:   l.Details,
		Timestamp: l.Timestamp,
	}
}
