package services

import (
	"fleetops/internal/domain/models"
	"fleetops/internal/repositories"
	"fleetops/internal/utils"
)

// LookupService is a thin read-through over master-data lookups.
type LookupService struct {
	Repo      repositories.LookupRepository
	RequestID string
}

func (s LookupService) Customers(q string) ([]models.Option, error) {
	utils.LogEvent(s.RequestID, "lookup", "customers", "q="+q)
	return s.Repo.Customers(q)
}

func (s LookupService) Projects(customerID int64) ([]models.Option, error) {
	return s.Repo.Projects(customerID)
}

func (s LookupService) Vehicles(q string) ([]models.Option, error) {
	return s.Repo.Vehicles(q)
}

func (s LookupService) Drivers(q string) ([]models.Option, error) {
	return s.Repo.Drivers(q)
}

func (s LookupService) Vendors(q string) ([]models.Option, error) {
	return s.Repo.Vendors(q)
}
