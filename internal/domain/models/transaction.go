package models

// TransactionSummary is one saved trip transaction as shown in listings.
type TransactionSummary struct {
	ID            int64  `json:"id"`
	Mode          string `json:"mode"`
	Date          string `json:"date"`
	TripNo        string `json:"trip_no"`
	VehicleNumber string `json:"vehicle_number"`
	DriverName    string `json:"driver_name"`
	TotalKM       string `json:"total_km"`
	TotalFreight  string `json:"total_freight"`
	CreatedAt     string `json:"created_at"`
}

// TransactionRecord is a persisted transaction: the indexed summary columns
// plus the full flat submit payload.
type TransactionRecord struct {
	TransactionSummary
	Payload map[string]string `json:"payload"`
}
