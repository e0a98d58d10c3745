package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"

	"fleetops/internal/domain/models"
	"fleetops/internal/repositories"
	"fleetops/internal/utils"
)

// TripSheetService renders the duty-slip PDF for a saved transaction.
type TripSheetService struct {
	TxnRepo   repositories.TransactionRepository
	RequestID string

	// Loader overrides the repository read in tests.
	Loader func(int64) (models.TransactionRecord, error)
}

func (s TripSheetService) GenerateDutySlip(transactionID int64) ([]byte, string, error) {
	rec, err := s.load(transactionID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "tripsheet", "generate", fmt.Sprintf("transaction_id=%d", transactionID))
	return buildDutySlipPDF(rec)
}

func (s TripSheetService) load(id int64) (models.TransactionRecord, error) {
	if s.Loader != nil {
		return s.Loader(id)
	}
	return s.TxnRepo.GetByID(id)
}

func buildDutySlipPDF(rec models.TransactionRecord) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Duty Slip", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "DUTY SLIP")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Transaction : #%d (%s)", rec.ID, strings.ToUpper(rec.Mode)),
		fmt.Sprintf("Date        : %s", safe(rec.Date, "-")),
		fmt.Sprintf("Trip No     : %s", safe(rec.TripNo, "-")),
		fmt.Sprintf("Vehicle     : %s", safe(rec.VehicleNumber, "-")),
		fmt.Sprintf("Driver      : %s", safe(rec.DriverName, "-")),
		fmt.Sprintf("Opening KM  : %s", safe(rec.Payload["opening_km"], "-")),
		fmt.Sprintf("Closing KM  : %s", safe(rec.Payload["closing_km"], "-")),
		fmt.Sprintf("Total KM    : %s", safe(rec.TotalKM, "-")),
		fmt.Sprintf("Duty Hours  : %s", safe(rec.Payload["total_duty_hours"], "-")),
		fmt.Sprintf("Expenses    : %s", safe(rec.Payload["total_expenses"], "-")),
	}

	if arn := strings.TrimSpace(rec.Payload["advance_request_no"]); arn != "" {
		lines = append(lines,
			fmt.Sprintf("Freight     : %s", safe(rec.TotalFreight, "-")),
			fmt.Sprintf("Advance Req : %s", arn),
			fmt.Sprintf("Balance Due : %s", safe(rec.Payload["balance_to_be_paid"], "-")),
		)
	}

	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Supervisor sign-off: "+safe(rec.Payload["supervisor_name"], "____________"), "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("DUTYSLIP_%d_%s.pdf", rec.ID, safeFilenamePart(rec.TripNo))
	return buf.Bytes(), filename, nil
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func safeFilenamePart(s string) string {
	out := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, strings.TrimSpace(s))
	if out == "" {
		return "trip"
	}
	return out
}
