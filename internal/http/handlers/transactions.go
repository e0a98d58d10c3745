package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fleetops/internal/http/middleware"
	"fleetops/internal/repositories"
	"fleetops/internal/services"
)

// GET /api/transactions?mode=&start_date=&end_date=
func ListTransactions(c *gin.Context) {
	repo := repositories.TransactionRepository{}
	out, err := repo.List(c.Query("mode"), c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to list transactions", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transactions": out})
}

// GET /api/transactions/:id
func GetTransaction(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", nil)
		return
	}

	rec, err := repositories.TransactionRepository{}.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transaction": rec})
}

// DELETE /api/transactions/:id
func DeleteTransaction(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", nil)
		return
	}

	if err := (repositories.TransactionRepository{}).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "transaction deleted"})
}

// GET /api/transactions/:id/duty-slip
func GetTransactionDutySlip(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", nil)
		return
	}

	svc := services.TripSheetService{
		TxnRepo:   repositories.TransactionRepository{},
		RequestID: middleware.GetRequestID(c),
	}
	pdf, filename, err := svc.GenerateDutySlip(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
