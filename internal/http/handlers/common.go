package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleetops/internal/draft"
	"fleetops/internal/http/middleware"
	"fleetops/internal/repositories"
	"fleetops/internal/services"
)

// draftManager holds the active form sessions for this process. One
// back-office user edits one draft at a time; the manager only fans the
// store out across HTTP handlers.
var draftManager = draft.NewManager()

func draftService(c *gin.Context) services.DraftService {
	return services.DraftService{
		Drafts:    draftManager,
		ARN:       draft.ARNGenerator{},
		Snapshots: repositories.SnapshotRepository{},
		TxnRepo:   repositories.TransactionRepository{},
		RequestID: middleware.GetRequestID(c),
	}
}

// RespondError sends a standard error payload with request_id included.
func RespondError(c *gin.Context, status int, message string, err error) {
	payload := gin.H{
		"message":    message,
		"request_id": middleware.GetRequestID(c),
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "empty body", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid payload", err)
		return false
	}
	return true
}
