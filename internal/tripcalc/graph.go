package tripcalc

import (
	"github.com/shopspring/decimal"

	"fleetops/internal/domain/models"
	"fleetops/internal/utils"
)

// Rule derives one output field from its declared inputs. Rules are kept
// in a single ordered table; every input of a rule is either a raw field
// or the output of a rule earlier in the table, so one forward pass is a
// complete recomputation and no cycle is possible.
type Rule struct {
	Output models.Field
	Inputs []models.Field

	// AdhocOnly rules run for Adhoc/Replacement drafts; in Fixed mode
	// their output is cleared instead.
	AdhocOnly bool

	// Compute returns the derived text and whether the output is
	// materialized. ok=false leaves the output unset.
	Compute func(d *models.TransactionDraft) (string, bool)
}

// Rules returns the derivation table in dependency order.
func Rules() []Rule {
	return ruleTable
}

var ruleTable = []Rule{
	{
		Output: models.FieldTotalKM,
		Inputs: []models.Field{models.FieldOpeningKM, models.FieldClosingKM},
		Compute: func(d *models.TransactionDraft) (string, bool) {
			open, okOpen := utils.ParseAmountStrict(d.Trip.OpeningKM)
			closing, okClose := utils.ParseAmountStrict(d.Trip.ClosingKM)
			if !okOpen || !okClose {
				return "", false
			}
			diff := closing.Sub(open)
			if diff.IsNegative() {
				// entry error; validation flags it, nothing is clamped
				return "", false
			}
			return utils.FormatAmount(diff), true
		},
	},
	{
		Output: models.FieldTotalDutyHours,
		Inputs: []models.Field{
			models.FieldArrivalTimeAtHub,
			models.FieldOutTimeFromHub,
			models.FieldInTimeByCust,
			models.FieldReturnReportingTime,
		},
		Compute: func(d *models.TransactionDraft) (string, bool) {
			start, end := dutyPair(d)
			s24, err := Normalize24(start)
			if err != nil {
				return "", false
			}
			e24, err := Normalize24(end)
			if err != nil {
				return "", false
			}
			hours, err := DurationHours(s24, e24)
			if err != nil {
				return "", false
			}
			return hours, true
		},
	},
	{
		Output: models.FieldTotalExpenses,
		Inputs: []models.Field{
			models.FieldTollExpenses,
			models.FieldParkingCharges,
			models.FieldLoadingCharges,
			models.FieldUnloadingCharges,
			models.FieldOtherCharges,
		},
		Compute: func(d *models.TransactionDraft) (string, bool) {
			sum := utils.ParseAmount(d.Trip.TollExpenses).
				Add(utils.ParseAmount(d.Trip.ParkingCharges)).
				Add(utils.ParseAmount(d.Trip.LoadingCharges)).
				Add(utils.ParseAmount(d.Trip.UnloadingCharges)).
				Add(utils.ParseAmount(d.Trip.OtherCharges))
			return utils.FormatAmount(sum), true
		},
	},
	{
		Output:    models.FieldTotalFreight,
		Inputs:    []models.Field{models.FieldFixKm, models.FieldVFreightFix, models.FieldVFreightVariable, models.FieldTotalKM},
		AdhocOnly: true,
		Compute: func(d *models.TransactionDraft) (string, bool) {
			fixKm := utils.ParseAmount(d.Trip.FixKm)
			fixRate := utils.ParseAmount(d.Trip.VFreightFix)
			varRate := utils.ParseAmount(d.Trip.VFreightVariable)
			totalKM := utils.ParseAmount(d.Calc.TotalKM)

			extraKm := totalKM.Sub(fixKm)
			if extraKm.IsNegative() {
				extraKm = decimal.Zero
			}
			total := fixKm.Mul(fixRate).Add(extraKm.Mul(varRate))
			return utils.FormatAmount(total), true
		},
	},
	{
		Output:    models.FieldRevenue,
		Inputs:    []models.Field{models.FieldTotalFreight},
		AdhocOnly: true,
		Compute: func(d *models.TransactionDraft) (string, bool) {
			if d.Calc.TotalFreight == "" {
				return "", false
			}
			return d.Calc.TotalFreight, true
		},
	},
	{
		Output:    models.FieldMargin,
		Inputs:    []models.Field{models.FieldRevenue, models.FieldTotalExpenses},
		AdhocOnly: true,
		Compute: func(d *models.TransactionDraft) (string, bool) {
			margin := utils.ParseAmount(d.Calc.Revenue).Sub(utils.ParseAmount(d.Calc.TotalExpenses))
			return utils.FormatAmount(margin), true
		},
	},
	{
		Output:    models.FieldMarginPercentage,
		Inputs:    []models.Field{models.FieldMargin, models.FieldRevenue},
		AdhocOnly: true,
		Compute: func(d *models.TransactionDraft) (string, bool) {
			revenue := utils.ParseAmount(d.Calc.Revenue)
			if revenue.IsZero() {
				return utils.FormatAmount(decimal.Zero), true
			}
			pct := utils.ParseAmount(d.Calc.Margin).
				Div(revenue).
				Mul(decimal.NewFromInt(100))
			return utils.FormatAmount(pct), true
		},
	},
	{
		Output:    models.FieldBalanceToBePaid,
		Inputs:    []models.Field{models.FieldTotalFreight, models.FieldAdvancePaidAmount},
		AdhocOnly: true,
		Compute: func(d *models.TransactionDraft) (string, bool) {
			balance := utils.ParseAmount(d.Calc.TotalFreight).Sub(utils.ParseAmount(d.Trip.AdvancePaidAmount))
			return utils.FormatAmount(balance), true
		},
	},
	{
		Output:    models.FieldVariance,
		Inputs:    []models.Field{models.FieldBalanceToBePaid, models.FieldBalancePaidAmount},
		AdhocOnly: true,
		Compute: func(d *models.TransactionDraft) (string, bool) {
			variance := utils.ParseAmount(d.Calc.BalanceToBePaid).Sub(utils.ParseAmount(d.Trip.BalancePaidAmount))
			return utils.FormatAmount(variance), true
		},
	},
}

// dutyPair picks the clock fields that bound the duty for the active mode:
// Fixed duty runs from hub reporting to return reporting, Adhoc/Replacement
// duty from leaving the hub to reporting in at the customer.
func dutyPair(d *models.TransactionDraft) (start, end string) {
	if d.Mode.IsAdhocLike() {
		return d.Trip.OutTimeFromHub, d.Trip.InTimeByCust
	}
	return d.Trip.ArrivalTimeAtHub, d.Trip.ReturnReportingTime
}
