package middleware

import (
	"encoding/json"
	"strings"
	"time"

	"asset-signature-service/internal/core/domain"
	"asset-signature-service/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuditLog creates an audit middleware that records successful write
// operations after the response is sent.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Only audit successful write operations (status 2xx)
		if c.Writer.Status() < 200 || c.Writer.Status() >= 300 {
			return
		}
		if c.Request.Method == "GET" || c.Request.Method == "HEAD" || c.Request.Method == "OPTIONS" {
			return
		}

		action, resourceType := mapPathToAction(c.Request.URL.Path)
		if action == "" {
			return
		}

		var signerID *int64
		if sid, exists := c.Get(CtxSignerID); exists {
			if id, ok := sid.(int64); ok {
				signerID = &id
			}
		}

		details, _ := json.Marshal(map[string]interface{}{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"status": c.Writer.Status(),
		})

		auditSvc.Log(c.Request.Context(), &domain.AuditEntry{
			ID:           uuid.New(),
			SignerID:     signerID,
			Action:       action,
			ResourceType: resourceType,
			ResourceID:   c.Param("id"),
			IPAddress:    c.ClientIP(),
			Details:      string(details),
			CreatedAt:    time.Now(),
		})
	}
}

func mapPathToAction(path string) (domain.AuditAction, string) {
	switch {
	case path == "/api/v1/signatures/generate":
		return domain.AuditActionGenerate, "signature"
	case path == "/api/v1/signatures/validate":
		return domain.AuditActionValidate, "signature"
	case strings.HasPrefix(path, "/api/v1/signatures/verify/"):
		return domain.AuditActionVerify, "signature"
	case path == "/api/v1/signatures/hash":
		return domain.AuditActionHash, "signature"
	case path == "/api/v1/signatures/records":
		return domain.AuditActionCreate, "signature_record"
	case strings.HasSuffix(path, "/invalidate"):
		return domain.AuditActionInvalidate, "signature_record"
	case strings.HasSuffix(path, "/archive"):
		return domain.AuditActionArchive, "signature_record"
	}
	return "", ""
}
