package domain

import "time"

// AuditEntry records an operator or site action, written by the event bus
// subscriber after every store mutation commits.
type AuditEntry struct {
	ID        int64     `json:"id,string"`
	Actor     string    `json:"actor"`
	Action    string    `json:"action"`
	Detail    string    `json:"detail"`
	SourceIP  string    `json:"source_ip"`
	CreatedAt time.Time `json:"created_at"`
}
