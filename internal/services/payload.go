package services

import (
	"strings"

	"fleetops/internal/domain/models"
	"fleetops/internal/tripcalc"
	"fleetops/internal/utils"
)

// BuildSubmitPayload serializes a validated draft into the flat field map
// the persistence endpoint expects:
//   - dates as ISO YYYY-MM-DD
//   - clock times in 24-hour HH:MM (12-hour text is a screen concern)
//   - id sets as JSON-encoded integer arrays, even for one selection
//   - derived monetary/KM figures as fixed-2 decimal strings
//   - advance_request_no present only for Adhoc/Replacement
func BuildSubmitPayload(d *models.TransactionDraft) map[string]string {
	p := map[string]string{
		"mode":    string(d.Mode),
		"date":    isoDate(d.Trip.Date),
		"trip_no": d.Trip.TripNo,

		"opening_km":            d.Trip.OpeningKM,
		"closing_km":            d.Trip.ClosingKM,
		"arrival_time_at_hub":   clock24(d.Trip.ArrivalTimeAtHub),
		"out_time_from_hub":     clock24(d.Trip.OutTimeFromHub),
		"in_time_by_cust":       clock24(d.Trip.InTimeByCust),
		"return_reporting_time": clock24(d.Trip.ReturnReportingTime),

		"toll_expenses":     d.Trip.TollExpenses,
		"parking_charges":   d.Trip.ParkingCharges,
		"loading_charges":   d.Trip.LoadingCharges,
		"unloading_charges": d.Trip.UnloadingCharges,
		"other_charges":     d.Trip.OtherCharges,

		"total_km":         d.Calc.TotalKM,
		"total_duty_hours": d.Calc.TotalDutyHours,
		"total_expenses":   d.Calc.TotalExpenses,

		"supervisor_name":    d.Supervisor.SupervisorName,
		"supervisor_remarks": d.Supervisor.SupervisorRemarks,
	}

	if d.Mode.IsAdhocLike() {
		p["vehicle_number"] = d.Master.VehicleNumber
		p["vendor_name"] = d.Master.VendorName
		p["vendor_number"] = d.Master.VendorNumber
		p["driver_name"] = d.Master.DriverName
		p["driver_number"] = d.Master.DriverNumber
		p["driver_aadhar_number"] = d.Master.DriverAadharNumber
		p["replacement_driver_name"] = d.Master.ReplacementDriverName
		p["replacement_driver_no"] = d.Master.ReplacementDriverNo

		p["v_freight_fix"] = d.Trip.VFreightFix
		p["fix_km"] = d.Trip.FixKm
		p["v_freight_variable"] = d.Trip.VFreightVariable
		p["advance_paid_amount"] = d.Trip.AdvancePaidAmount
		p["balance_paid_amount"] = d.Trip.BalancePaidAmount

		p["total_freight"] = d.Calc.TotalFreight
		p["revenue"] = d.Calc.Revenue
		p["margin"] = d.Calc.Margin
		p["margin_percentage"] = d.Calc.MarginPercentage
		p["balance_to_be_paid"] = d.Calc.BalanceToBePaid
		p["variance"] = d.Calc.Variance
		p["advance_request_no"] = d.Calc.AdvanceRequestNo
	} else {
		p["customer_id"] = d.Get(models.FieldCustomerID)
		p["project_id"] = d.Get(models.FieldProjectID)
		p["vendor_id"] = d.Get(models.FieldVendorID)
		p["vehicle_ids"] = models.EncodeIDList(d.Master.VehicleIDs)
		p["driver_ids"] = models.EncodeIDList(d.Master.DriverIDs)
	}

	return p
}

// BuildRecord pairs the payload with the indexed summary columns.
func BuildRecord(d *models.TransactionDraft) models.TransactionRecord {
	vehicle := d.Master.VehicleNumber
	if !d.Mode.IsAdhocLike() {
		vehicle = models.EncodeIDList(d.Master.VehicleIDs)
	}
	driver := d.Master.DriverName
	if !d.Mode.IsAdhocLike() {
		driver = models.EncodeIDList(d.Master.DriverIDs)
	}

	return models.TransactionRecord{
		TransactionSummary: models.TransactionSummary{
			Mode:          string(d.Mode),
			Date:          isoDate(d.Trip.Date),
			TripNo:        d.Trip.TripNo,
			VehicleNumber: vehicle,
			DriverName:    driver,
			TotalKM:       d.Calc.TotalKM,
			TotalFreight:  d.Calc.TotalFreight,
		},
		Payload: BuildSubmitPayload(d),
	}
}

// isoDate normalizes a parseable date to YYYY-MM-DD and leaves anything
// else verbatim for the receiving side to reject.
func isoDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	t, err := utils.ParseDate(s)
	if err != nil {
		return s
	}
	return utils.FormatDate(t)
}

// clock24 normalizes a parseable clock time to HH:MM.
func clock24(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	v, err := tripcalc.Normalize24(s)
	if err != nil {
		return s
	}
	return v
}
