package models

// Field names a single cell of the transaction form. The same names are
// used as JSON keys in snapshots, API payloads and validation results.
type Field string

const (
	// Identity (Fixed mode, master-data linked)
	FieldCustomerID Field = "customer_id"
	FieldProjectID  Field = "project_id"
	FieldVendorID   Field = "vendor_id"
	FieldVehicleIDs Field = "vehicle_ids"
	FieldDriverIDs  Field = "driver_ids"

	// Identity (Adhoc/Replacement, manually entered)
	FieldVehicleNumber         Field = "vehicle_number"
	FieldVendorName            Field = "vendor_name"
	FieldVendorNumber          Field = "vendor_number"
	FieldDriverName            Field = "driver_name"
	FieldDriverNumber          Field = "driver_number"
	FieldDriverAadharNumber    Field = "driver_aadhar_number"
	FieldReplacementDriverName Field = "replacement_driver_name"
	FieldReplacementDriverNo   Field = "replacement_driver_no"

	// Raw trip facts
	FieldDate                Field = "date"
	FieldTripNo              Field = "trip_no"
	FieldOpeningKM           Field = "opening_km"
	FieldClosingKM           Field = "closing_km"
	FieldArrivalTimeAtHub    Field = "arrival_time_at_hub"
	FieldOutTimeFromHub      Field = "out_time_from_hub"
	FieldInTimeByCust        Field = "in_time_by_cust"
	FieldReturnReportingTime Field = "return_reporting_time"
	FieldVFreightFix         Field = "v_freight_fix"
	FieldFixKm               Field = "fix_km"
	FieldVFreightVariable    Field = "v_freight_variable"
	FieldTollExpenses        Field = "toll_expenses"
	FieldParkingCharges      Field = "parking_charges"
	FieldLoadingCharges      Field = "loading_charges"
	FieldUnloadingCharges    Field = "unloading_charges"
	FieldOtherCharges        Field = "other_charges"
	FieldAdvancePaidAmount   Field = "advance_paid_amount"
	FieldBalancePaidAmount   Field = "balance_paid_amount"

	// Supervisor closeout
	FieldSupervisorName    Field = "supervisor_name"
	FieldSupervisorRemarks Field = "supervisor_remarks"

	// Derived (read-only, produced by the recalculation engine)
	FieldTotalKM          Field = "total_km"
	FieldTotalDutyHours   Field = "total_duty_hours"
	FieldTotalFreight     Field = "total_freight"
	FieldTotalExpenses    Field = "total_expenses"
	FieldBalanceToBePaid  Field = "balance_to_be_paid"
	FieldVariance         Field = "variance"
	FieldRevenue          Field = "revenue"
	FieldMargin           Field = "margin"
	FieldMarginPercentage Field = "margin_percentage"
	FieldAdvanceRequestNo Field = "advance_request_no"
)

var derivedFields = map[Field]bool{
	FieldTotalKM:          true,
	FieldTotalDutyHours:   true,
	FieldTotalFreight:     true,
	FieldTotalExpenses:    true,
	FieldBalanceToBePaid:  true,
	FieldVariance:         true,
	FieldRevenue:          true,
	FieldMargin:           true,
	FieldMarginPercentage: true,
	FieldAdvanceRequestNo: true,
}

// IsDerived reports whether f may only be written by the recalculation
// engine (or the mode-transition guard for the advance request number).
func (f Field) IsDerived() bool {
	return derivedFields[f]
}
