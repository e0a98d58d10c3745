// Package validation holds the mode-aware submit checks for transaction
// drafts: required fields, digit-length formats, KM ordering, and the
// deterministic first-invalid-field used for form focus.
package validation

import (
	"strconv"
	"strings"

	"fleetops/internal/domain/models"
	"fleetops/internal/utils"
)

// Result is the submit-time validation outcome. Errors maps each invalid
// field to its message; First is the highest-priority invalid field per
// the form's declared focus order.
type Result struct {
	Valid  bool                    `json:"valid"`
	Errors map[models.Field]string `json:"errors"`
	First  models.Field            `json:"first_invalid_field,omitempty"`
}

const (
	msgRequired       = "required"
	msgTenDigits      = "must be exactly 10 digits"
	msgTwelveDigits   = "must be exactly 12 digits"
	msgPositiveWhole  = "must be a positive whole number"
	msgTripNoTooLong  = "must be at most 50 characters"
	msgClosingKMOrder = "closing km must be greater than opening km"
)

// fixedFocusOrder and adhocFocusOrder fix which invalid field the form
// highlights first. The vehicle selection deliberately precedes the driver
// selection. Ordering here is behavior, not cosmetics.
var fixedFocusOrder = []models.Field{
	models.FieldDate,
	models.FieldTripNo,
	models.FieldVehicleIDs,
	models.FieldDriverIDs,
	models.FieldOpeningKM,
	models.FieldClosingKM,
	models.FieldArrivalTimeAtHub,
	models.FieldReturnReportingTime,
}

var adhocFocusOrder = []models.Field{
	models.FieldDate,
	models.FieldTripNo,
	models.FieldVehicleNumber,
	models.FieldVendorName,
	models.FieldVendorNumber,
	models.FieldDriverName,
	models.FieldDriverNumber,
	models.FieldDriverAadharNumber,
	models.FieldReplacementDriverName,
	models.FieldReplacementDriverNo,
	models.FieldOpeningKM,
	models.FieldClosingKM,
	models.FieldOutTimeFromHub,
	models.FieldInTimeByCust,
}

// Validate checks a draft against the active mode's rules.
func Validate(d *models.TransactionDraft) Result {
	errs := map[models.Field]string{}

	requireText(errs, models.FieldDate, d.Trip.Date)
	requireText(errs, models.FieldTripNo, d.Trip.TripNo)
	requireText(errs, models.FieldOpeningKM, d.Trip.OpeningKM)
	requireText(errs, models.FieldClosingKM, d.Trip.ClosingKM)

	if d.Mode.IsAdhocLike() {
		requireText(errs, models.FieldVehicleNumber, d.Master.VehicleNumber)
		requireText(errs, models.FieldVendorName, d.Master.VendorName)
		requireText(errs, models.FieldDriverName, d.Master.DriverName)
		requireText(errs, models.FieldDriverNumber, d.Master.DriverNumber)

		// a named replacement driver must come with a reachable number
		repName := strings.TrimSpace(d.Master.ReplacementDriverName)
		if repName != "" && !utils.IsNotApplicable(repName) {
			requireText(errs, models.FieldReplacementDriverNo, d.Master.ReplacementDriverNo)
		}
	} else {
		if len(d.Master.VehicleIDs) == 0 {
			errs[models.FieldVehicleIDs] = msgRequired
		}
		if len(d.Master.DriverIDs) == 0 {
			errs[models.FieldDriverIDs] = msgRequired
		}
	}

	checkPhone(errs, models.FieldDriverNumber, d.Master.DriverNumber)
	checkPhone(errs, models.FieldVendorNumber, d.Master.VendorNumber)
	checkPhone(errs, models.FieldReplacementDriverNo, d.Master.ReplacementDriverNo)

	if v := strings.TrimSpace(d.Master.DriverAadharNumber); v != "" && !utils.IsDigits(v, 12) {
		errs[models.FieldDriverAadharNumber] = msgTwelveDigits
	}

	checkTripNo(errs, d)
	checkKMOrder(errs, d)

	res := Result{Valid: len(errs) == 0, Errors: errs}
	if !res.Valid {
		res.First = firstInvalid(d.Mode, errs)
	}
	return res
}

func requireText(errs map[models.Field]string, f models.Field, v string) {
	if strings.TrimSpace(v) == "" {
		errs[f] = msgRequired
	}
}

// checkPhone enforces the exact-10-digit format on non-empty values.
// "NA"/"N/A" is an explicit absence and bypasses the check.
func checkPhone(errs map[models.Field]string, f models.Field, v string) {
	v = strings.TrimSpace(v)
	if v == "" || utils.IsNotApplicable(v) {
		return
	}
	if _, taken := errs[f]; taken {
		return
	}
	if !utils.IsDigits(v, 10) {
		errs[f] = msgTenDigits
	}
}

func checkTripNo(errs map[models.Field]string, d *models.TransactionDraft) {
	v := strings.TrimSpace(d.Trip.TripNo)
	if v == "" {
		return
	}
	if _, taken := errs[models.FieldTripNo]; taken {
		return
	}
	if d.Mode.IsAdhocLike() {
		if len(v) > 50 {
			errs[models.FieldTripNo] = msgTripNoTooLong
		}
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		errs[models.FieldTripNo] = msgPositiveWhole
	}
}

func checkKMOrder(errs map[models.Field]string, d *models.TransactionDraft) {
	open, okOpen := utils.ParseAmountStrict(d.Trip.OpeningKM)
	closing, okClose := utils.ParseAmountStrict(d.Trip.ClosingKM)
	if !okOpen || !okClose {
		return
	}
	if _, taken := errs[models.FieldClosingKM]; taken {
		return
	}
	if closing.Cmp(open) <= 0 {
		errs[models.FieldClosingKM] = msgClosingKMOrder
	}
}

func firstInvalid(mode models.TransactionMode, errs map[models.Field]string) models.Field {
	order := fixedFocusOrder
	if mode.IsAdhocLike() {
		order = adhocFocusOrder
	}
	for _, f := range order {
		if _, ok := errs[f]; ok {
			return f
		}
	}
	// fields outside the active form's focus order still resolve
	// deterministically via the other form's order
	fallback := adhocFocusOrder
	if mode.IsAdhocLike() {
		fallback = fixedFocusOrder
	}
	for _, f := range fallback {
		if _, ok := errs[f]; ok {
			return f
		}
	}
	return ""
}
