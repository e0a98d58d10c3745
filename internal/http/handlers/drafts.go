package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleetops/internal/domain/models"
)

type createDraftRequest struct {
	Mode string `json:"mode"`
}

// POST /api/drafts
func CreateDraft(c *gin.Context) {
	var req createDraftRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	mode := models.TransactionMode(req.Mode)
	if req.Mode == "" {
		mode = models.ModeFixed
	}

	d, err := draftService(c).CreateDraft(mode)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"draft": d})
}

// GET /api/drafts/:id
func GetDraft(c *gin.Context) {
	d, err := draftService(c).GetDraft(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": d})
}

type fieldChangeRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// PUT /api/drafts/:id/fields
// One field-change event from the form; the response carries the derived
// fields the engine recomputed so the read-only cells can refresh.
func ApplyDraftField(c *gin.Context) {
	var req fieldChangeRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	change, err := draftService(c).ApplyFieldChange(c.Param("id"), models.Field(req.Field), req.Value)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"draft":   change.Draft,
		"touched": change.Touched,
	})
}

type switchModeRequest struct {
	Mode string `json:"mode"`
}

// PUT /api/drafts/:id/mode
func SwitchDraftMode(c *gin.Context) {
	var req switchModeRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	d, err := draftService(c).SwitchMode(c.Param("id"), models.TransactionMode(req.Mode))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": d})
}

// POST /api/drafts/:id/submit
func SubmitDraft(c *gin.Context) {
	res, err := draftService(c).Submit(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if !res.Validation.Valid {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"errors":              res.Validation.Errors,
			"first_invalid_field": res.Validation.First,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"transaction_id": res.TransactionID,
		"payload":        res.Payload,
	})
}

// DELETE /api/drafts/:id
func DiscardDraft(c *gin.Context) {
	if err := draftService(c).Discard(c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "draft discarded"})
}

// POST /api/drafts/:id/restore
// Brings a crash-recovery snapshot back as the active session.
func RestoreDraft(c *gin.Context) {
	d, err := draftService(c).Restore(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": d})
}
