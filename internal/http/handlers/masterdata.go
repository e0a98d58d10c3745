package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fleetops/internal/http/middleware"
	"fleetops/internal/repositories"
	"fleetops/internal/services"
)

func lookupService(c *gin.Context) services.LookupService {
	return services.LookupService{
		Repo:      repositories.LookupRepository{},
		RequestID: middleware.GetRequestID(c),
	}
}

// GET /api/customers?q=
func GetCustomers(c *gin.Context) {
	out, err := lookupService(c).Customers(c.Query("q"))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to list customers", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"options": out})
}

// GET /api/customers/:id/projects
func GetCustomerProjects(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	out, err := lookupService(c).Projects(id)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to list projects", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"options": out})
}

// GET /api/vehicles?q=
func GetVehicles(c *gin.Context) {
	out, err := lookupService(c).Vehicles(c.Query("q"))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to list vehicles", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"options": out})
}

// GET /api/drivers?q=
func GetDrivers(c *gin.Context) {
	out, err := lookupService(c).Drivers(c.Query("q"))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to list drivers", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"options": out})
}

// GET /api/vendors?q=
func GetVendors(c *gin.Context) {
	out, err := lookupService(c).Vendors(c.Query("q"))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to list vendors", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"options": out})
}
