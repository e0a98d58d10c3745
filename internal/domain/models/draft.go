package models

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"fleetops/internal/domain"
)

// TransactionMode selects which derivation rules and required fields apply.
// Adhoc and Replacement share the same field set and rules.
type TransactionMode string

const (
	ModeFixed       TransactionMode = "fixed"
	ModeAdhoc       TransactionMode = "adhoc"
	ModeReplacement TransactionMode = "replacement"
)

func (m TransactionMode) Valid() bool {
	return m == ModeFixed || m == ModeAdhoc || m == ModeReplacement
}

// IsAdhocLike reports whether the full freight/margin derivation applies.
func (m TransactionMode) IsAdhocLike() bool {
	return m == ModeAdhoc || m == ModeReplacement
}

// MasterData holds identity fields. Fixed mode links to master-data ids;
// Adhoc/Replacement captures vehicle/vendor/driver identity as typed text.
type MasterData struct {
	CustomerID int64   `json:"customer_id"`
	ProjectID  int64   `json:"project_id"`
	VendorID   int64   `json:"vendor_id"`
	VehicleIDs []int64 `json:"vehicle_ids"`
	DriverIDs  []int64 `json:"driver_ids"`

	VehicleNumber         string `json:"vehicle_number"`
	VendorName            string `json:"vendor_name"`
	VendorNumber          string `json:"vendor_number"`
	DriverName            string `json:"driver_name"`
	DriverNumber          string `json:"driver_number"`
	DriverAadharNumber    string `json:"driver_aadhar_number"`
	ReplacementDriverName string `json:"replacement_driver_name"`
	ReplacementDriverNo   string `json:"replacement_driver_no"`
}

// TransactionData holds raw trip facts exactly as the user typed them.
// Numbers are kept as text so a half-typed value is never overwritten.
type TransactionData struct {
	Date                string `json:"date"`
	TripNo              string `json:"trip_no"`
	OpeningKM           string `json:"opening_km"`
	ClosingKM           string `json:"closing_km"`
	ArrivalTimeAtHub    string `json:"arrival_time_at_hub"`
	OutTimeFromHub      string `json:"out_time_from_hub"`
	InTimeByCust        string `json:"in_time_by_cust"`
	ReturnReportingTime string `json:"return_reporting_time"`
	VFreightFix         string `json:"v_freight_fix"`
	FixKm               string `json:"fix_km"`
	VFreightVariable    string `json:"v_freight_variable"`
	TollExpenses        string `json:"toll_expenses"`
	ParkingCharges      string `json:"parking_charges"`
	LoadingCharges      string `json:"loading_charges"`
	UnloadingCharges    string `json:"unloading_charges"`
	OtherCharges        string `json:"other_charges"`
	AdvancePaidAmount   string `json:"advance_paid_amount"`
	BalancePaidAmount   string `json:"balance_paid_amount"`
}

// CalculatedData holds system figures. Every value here is produced by the
// recalculation engine; empty string means "not derivable yet".
type CalculatedData struct {
	TotalKM          string `json:"total_km"`
	TotalDutyHours   string `json:"total_duty_hours"`
	TotalFreight     string `json:"total_freight"`
	TotalExpenses    string `json:"total_expenses"`
	BalanceToBePaid  string `json:"balance_to_be_paid"`
	Variance         string `json:"variance"`
	Revenue          string `json:"revenue"`
	Margin           string `json:"margin"`
	MarginPercentage string `json:"margin_percentage"`
	AdvanceRequestNo string `json:"advance_request_no"`
}

// SupervisorData holds the closeout fields filled at end of duty.
type SupervisorData struct {
	SupervisorName    string `json:"supervisor_name"`
	SupervisorRemarks string `json:"supervisor_remarks"`
}

// TransactionDraft is one in-progress, unsaved transaction form state.
type TransactionDraft struct {
	ID   string          `json:"id"`
	Mode TransactionMode `json:"mode"`

	Master     MasterData      `json:"master"`
	Trip       TransactionData `json:"trip"`
	Calc       CalculatedData  `json:"calc"`
	Supervisor SupervisorData  `json:"supervisor"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Clone returns a deep copy; id slices are the only reference fields.
func (d TransactionDraft) Clone() TransactionDraft {
	out := d
	out.Master.VehicleIDs = append([]int64(nil), d.Master.VehicleIDs...)
	out.Master.DriverIDs = append([]int64(nil), d.Master.DriverIDs...)
	return out
}

// Get returns the current value of a field as text. Id-set fields come
// back JSON-encoded ("[3,7]"), matching the submit payload encoding.
func (d *TransactionDraft) Get(f Field) string {
	switch f {
	case FieldCustomerID:
		return idText(d.Master.CustomerID)
	case FieldProjectID:
		return idText(d.Master.ProjectID)
	case FieldVendorID:
		return idText(d.Master.VendorID)
	case FieldVehicleIDs:
		return EncodeIDList(d.Master.VehicleIDs)
	case FieldDriverIDs:
		return EncodeIDList(d.Master.DriverIDs)
	case FieldVehicleNumber:
		return d.Master.VehicleNumber
	case FieldVendorName:
		return d.Master.VendorName
	case FieldVendorNumber:
		return d.Master.VendorNumber
	case FieldDriverName:
		return d.Master.DriverName
	case FieldDriverNumber:
		return d.Master.DriverNumber
	case FieldDriverAadharNumber:
		return d.Master.DriverAadharNumber
	case FieldReplacementDriverName:
		return d.Master.ReplacementDriverName
	case FieldReplacementDriverNo:
		return d.Master.ReplacementDriverNo
	case FieldDate:
		return d.Trip.Date
	case FieldTripNo:
		return d.Trip.TripNo
	case FieldOpeningKM:
		return d.Trip.OpeningKM
	case FieldClosingKM:
		return d.Trip.ClosingKM
	case FieldArrivalTimeAtHub:
		return d.Trip.ArrivalTimeAtHub
	case FieldOutTimeFromHub:
		return d.Trip.OutTimeFromHub
	case FieldInTimeByCust:
		return d.Trip.InTimeByCust
	case FieldReturnReportingTime:
		return d.Trip.ReturnReportingTime
	case FieldVFreightFix:
		return d.Trip.VFreightFix
	case FieldFixKm:
		return d.Trip.FixKm
	case FieldVFreightVariable:
		return d.Trip.VFreightVariable
	case FieldTollExpenses:
		return d.Trip.TollExpenses
	case FieldParkingCharges:
		return d.Trip.ParkingCharges
	case FieldLoadingCharges:
		return d.Trip.LoadingCharges
	case FieldUnloadingCharges:
		return d.Trip.UnloadingCharges
	case FieldOtherCharges:
		return d.Trip.OtherCharges
	case FieldAdvancePaidAmount:
		return d.Trip.AdvancePaidAmount
	case FieldBalancePaidAmount:
		return d.Trip.BalancePaidAmount
	case FieldSupervisorName:
		return d.Supervisor.SupervisorName
	case FieldSupervisorRemarks:
		return d.Supervisor.SupervisorRemarks
	case FieldTotalKM:
		return d.Calc.TotalKM
	case FieldTotalDutyHours:
		return d.Calc.TotalDutyHours
	case FieldTotalFreight:
		return d.Calc.TotalFreight
	case FieldTotalExpenses:
		return d.Calc.TotalExpenses
	case FieldBalanceToBePaid:
		return d.Calc.BalanceToBePaid
	case FieldVariance:
		return d.Calc.Variance
	case FieldRevenue:
		return d.Calc.Revenue
	case FieldMargin:
		return d.Calc.Margin
	case FieldMarginPercentage:
		return d.Calc.MarginPercentage
	case FieldAdvanceRequestNo:
		return d.Calc.AdvanceRequestNo
	}
	return ""
}

// SetRaw writes a user-editable field. Derived fields are rejected; id
// fields must parse. Free text is stored verbatim (trimmed).
func (d *TransactionDraft) SetRaw(f Field, value string) error {
	if f.IsDerived() {
		return domain.ValidationError{Field: string(f), Msg: "field is read-only"}
	}

	v := strings.TrimSpace(value)
	switch f {
	case FieldCustomerID:
		return setID(&d.Master.CustomerID, f, v)
	case FieldProjectID:
		return setID(&d.Master.ProjectID, f, v)
	case FieldVendorID:
		return setID(&d.Master.VendorID, f, v)
	case FieldVehicleIDs:
		ids, err := DecodeIDList(v)
		if err != nil {
			return domain.ValidationError{Field: string(f), Msg: "must be a list of ids"}
		}
		d.Master.VehicleIDs = ids
	case FieldDriverIDs:
		ids, err := DecodeIDList(v)
		if err != nil {
			return domain.ValidationError{Field: string(f), Msg: "must be a list of ids"}
		}
		d.Master.DriverIDs = ids
	case FieldVehicleNumber:
		d.Master.VehicleNumber = v
	case FieldVendorName:
		d.Master.VendorName = v
	case FieldVendorNumber:
		d.Master.VendorNumber = v
	case FieldDriverName:
		d.Master.DriverName = v
	case FieldDriverNumber:
		d.Master.DriverNumber = v
	case FieldDriverAadharNumber:
		d.Master.DriverAadharNumber = v
	case FieldReplacementDriverName:
		d.Master.ReplacementDriverName = v
	case FieldReplacementDriverNo:
		d.Master.ReplacementDriverNo = v
	case FieldDate:
		d.Trip.Date = v
	case FieldTripNo:
		d.Trip.TripNo = v
	case FieldOpeningKM:
		d.Trip.OpeningKM = v
	case FieldClosingKM:
		d.Trip.ClosingKM = v
	case FieldArrivalTimeAtHub:
		d.Trip.ArrivalTimeAtHub = v
	case FieldOutTimeFromHub:
		d.Trip.OutTimeFromHub = v
	case FieldInTimeByCust:
		d.Trip.InTimeByCust = v
	case FieldReturnReportingTime:
		d.Trip.ReturnReportingTime = v
	case FieldVFreightFix:
		d.Trip.VFreightFix = v
	case FieldFixKm:
		d.Trip.FixKm = v
	case FieldVFreightVariable:
		d.Trip.VFreightVariable = v
	case FieldTollExpenses:
		d.Trip.TollExpenses = v
	case FieldParkingCharges:
		d.Trip.ParkingCharges = v
	case FieldLoadingCharges:
		d.Trip.LoadingCharges = v
	case FieldUnloadingCharges:
		d.Trip.UnloadingCharges = v
	case FieldOtherCharges:
		d.Trip.OtherCharges = v
	case FieldAdvancePaidAmount:
		d.Trip.AdvancePaidAmount = v
	case FieldBalancePaidAmount:
		d.Trip.BalancePaidAmount = v
	case FieldSupervisorName:
		d.Supervisor.SupervisorName = v
	case FieldSupervisorRemarks:
		d.Supervisor.SupervisorRemarks = v
	default:
		return domain.ValidationError{Field: string(f), Msg: "unknown field"}
	}
	return nil
}

// SetDerived writes a system figure. Only the recalculation engine and the
// mode-transition guard call this.
func (d *TransactionDraft) SetDerived(f Field, value string) {
	switch f {
	case FieldTotalKM:
		d.Calc.TotalKM = value
	case FieldTotalDutyHours:
		d.Calc.TotalDutyHours = value
	case FieldTotalFreight:
		d.Calc.TotalFreight = value
	case FieldTotalExpenses:
		d.Calc.TotalExpenses = value
	case FieldBalanceToBePaid:
		d.Calc.BalanceToBePaid = value
	case FieldVariance:
		d.Calc.Variance = value
	case FieldRevenue:
		d.Calc.Revenue = value
	case FieldMargin:
		d.Calc.Margin = value
	case FieldMarginPercentage:
		d.Calc.MarginPercentage = value
	case FieldAdvanceRequestNo:
		d.Calc.AdvanceRequestNo = value
	}
}

func idText(id int64) string {
	if id <= 0 {
		return ""
	}
	return strconv.FormatInt(id, 10)
}

func setID(dst *int64, f Field, v string) error {
	if v == "" {
		*dst = 0
		return nil
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil || id < 0 {
		return domain.ValidationError{Field: string(f), Msg: "must be a numeric id"}
	}
	*dst = id
	return nil
}

// EncodeIDList renders an id set as a JSON array string ("[3,7]").
// The persistence schema expects this exact encoding even for one id.
func EncodeIDList(ids []int64) string {
	if len(ids) == 0 {
		return "[]"
	}
	b, err := json.Marshal(ids)
	if err != nil {
		return "[]"
	}
	return string(b)
}

// DecodeIDList accepts a JSON array ("[3,7]") or a comma list ("3,7").
func DecodeIDList(s string) ([]int64, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "[]" {
		return []int64{}, nil
	}
	if strings.HasPrefix(s, "[") {
		var ids []int64
		if err := json.Unmarshal([]byte(s), &ids); err != nil {
			return nil, err
		}
		return ids, nil
	}
	out := []int64{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}
