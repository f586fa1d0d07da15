package domain

import "time"

// AuditFields holds the timestamps shared by the onboarding entities.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
