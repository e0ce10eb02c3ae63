package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited signature operation.
type AuditAction string

const (
	AuditActionGenerate   AuditAction = "GENERATE"
	AuditActionValidate   AuditAction = "VALIDATE"
	AuditActionVerify     AuditAction = "VERIFY"
	AuditActionHash       AuditAction = "HASH"
	AuditActionCreate     AuditAction = "CREATE_RECORD"
	AuditActionInvalidate AuditAction = "INVALIDATE"
	AuditActionArchive    AuditAction = "ARCHIVE"
)

// AuditEntry records a single audited signature operation.
type AuditEntry struct {
	ID           uuid.UUID   `json:"id"`
	SignerID     *int64      `json:"signer_id,omitempty"`
	Action       AuditAction `json:"action"`
	ResourceType string      `json:"resource_type"`
	ResourceID   string      `json:"resource_id,omitempty"`
	Details      string      `json:"details,omitempty"` // JSON string
	IPAddress    string      `json:"ip_address"`
	CreatedAt    time.Time   `json:"created_at"`
}
