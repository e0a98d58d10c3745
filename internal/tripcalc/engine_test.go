package tripcalc

import (
	"testing"

	"fleetops/internal/domain/models"
)

func newDraft(mode models.TransactionMode) *models.TransactionDraft {
	return &models.TransactionDraft{ID: "t", Mode: mode}
}

func apply(t *testing.T, d *models.TransactionDraft, f models.Field, v string) {
	t.Helper()
	if err := d.SetRaw(f, v); err != nil {
		t.Fatalf("SetRaw(%s,%q) error: %v", f, v, err)
	}
	Recalculate(d, f)
}

func TestTotalKM(t *testing.T) {
	d := newDraft(models.ModeFixed)
	apply(t, d, models.FieldOpeningKM, "1200.5")
	if d.Calc.TotalKM != "" {
		t.Fatalf("TotalKM should stay unset with one operand, got %q", d.Calc.TotalKM)
	}

	apply(t, d, models.FieldClosingKM, "1350.75")
	if d.Calc.TotalKM != "150.25" {
		t.Fatalf("TotalKM = %q, want 150.25", d.Calc.TotalKM)
	}

	// closing below opening is an entry error: left unset, not clamped
	apply(t, d, models.FieldClosingKM, "1100")
	if d.Calc.TotalKM != "" {
		t.Fatalf("negative diff should leave TotalKM unset, got %q", d.Calc.TotalKM)
	}
}

func TestTotalKMPreservesRawInput(t *testing.T) {
	d := newDraft(models.ModeFixed)
	apply(t, d, models.FieldOpeningKM, "12oo")
	apply(t, d, models.FieldClosingKM, "1300")

	if d.Trip.OpeningKM != "12oo" {
		t.Fatalf("raw opening km was rewritten to %q", d.Trip.OpeningKM)
	}
	if d.Calc.TotalKM != "" {
		t.Fatalf("unparsable operand should leave TotalKM unset, got %q", d.Calc.TotalKM)
	}
}

func TestFreightChain(t *testing.T) {
	d := newDraft(models.ModeAdhoc)
	apply(t, d, models.FieldOpeningKM, "100")
	apply(t, d, models.FieldClosingKM, "250")
	apply(t, d, models.FieldFixKm, "100")
	apply(t, d, models.FieldVFreightFix, "10")
	apply(t, d, models.FieldVFreightVariable, "5")

	if d.Calc.TotalKM != "150.00" {
		t.Fatalf("TotalKM = %q, want 150.00", d.Calc.TotalKM)
	}
	// 100*10 + (150-100)*5
	if d.Calc.TotalFreight != "1250.00" {
		t.Fatalf("TotalFreight = %q, want 1250.00", d.Calc.TotalFreight)
	}
	if d.Calc.Revenue != "1250.00" {
		t.Fatalf("Revenue = %q, want 1250.00", d.Calc.Revenue)
	}

	apply(t, d, models.FieldTollExpenses, "300")
	if d.Calc.TotalExpenses != "300.00" {
		t.Fatalf("TotalExpenses = %q, want 300.00", d.Calc.TotalExpenses)
	}
	if d.Calc.Margin != "950.00" {
		t.Fatalf("Margin = %q, want 950.00", d.Calc.Margin)
	}
	if d.Calc.MarginPercentage != "76.00" {
		t.Fatalf("MarginPercentage = %q, want 76.00", d.Calc.MarginPercentage)
	}

	apply(t, d, models.FieldAdvancePaidAmount, "250")
	if d.Calc.BalanceToBePaid != "1000.00" {
		t.Fatalf("BalanceToBePaid = %q, want 1000.00", d.Calc.BalanceToBePaid)
	}
	apply(t, d, models.FieldBalancePaidAmount, "900")
	if d.Calc.Variance != "100.00" {
		t.Fatalf("Variance = %q, want 100.00", d.Calc.Variance)
	}
}

func TestFreightFlatBelowFixKm(t *testing.T) {
	d := newDraft(models.ModeAdhoc)
	apply(t, d, models.FieldOpeningKM, "0")
	apply(t, d, models.FieldClosingKM, "60")
	apply(t, d, models.FieldFixKm, "100")
	apply(t, d, models.FieldVFreightFix, "10")
	apply(t, d, models.FieldVFreightVariable, "5")

	// below the fixed slab no variable component accrues
	if d.Calc.TotalFreight != "1000.00" {
		t.Fatalf("TotalFreight = %q, want 1000.00", d.Calc.TotalFreight)
	}
}

func TestMarginPercentageZeroRevenue(t *testing.T) {
	d := newDraft(models.ModeAdhoc)
	apply(t, d, models.FieldTollExpenses, "500")
	apply(t, d, models.FieldVFreightFix, "0")

	if d.Calc.Revenue != "0.00" {
		t.Fatalf("Revenue = %q, want 0.00", d.Calc.Revenue)
	}
	if d.Calc.Margin != "-500.00" {
		t.Fatalf("Margin = %q, want -500.00", d.Calc.Margin)
	}
	if d.Calc.MarginPercentage != "0.00" {
		t.Fatalf("MarginPercentage must be 0.00 on zero revenue, got %q", d.Calc.MarginPercentage)
	}
}

func TestDutyHoursPairPerMode(t *testing.T) {
	d := newDraft(models.ModeFixed)
	apply(t, d, models.FieldArrivalTimeAtHub, "08:00")
	apply(t, d, models.FieldReturnReportingTime, "20:30")
	if d.Calc.TotalDutyHours != "12.50" {
		t.Fatalf("fixed duty hours = %q, want 12.50", d.Calc.TotalDutyHours)
	}

	d = newDraft(models.ModeAdhoc)
	apply(t, d, models.FieldOutTimeFromHub, "11:30 PM")
	apply(t, d, models.FieldInTimeByCust, "12:15 AM")
	if d.Calc.TotalDutyHours != "0.75" {
		t.Fatalf("adhoc duty hours = %q, want 0.75", d.Calc.TotalDutyHours)
	}
}

func TestAdhocOnlyFieldsClearedInFixedMode(t *testing.T) {
	d := newDraft(models.ModeAdhoc)
	apply(t, d, models.FieldOpeningKM, "0")
	apply(t, d, models.FieldClosingKM, "150")
	apply(t, d, models.FieldFixKm, "100")
	apply(t, d, models.FieldVFreightFix, "10")
	apply(t, d, models.FieldVFreightVariable, "5")
	if d.Calc.TotalFreight == "" {
		t.Fatal("adhoc draft should derive freight")
	}

	d.Mode = models.ModeFixed
	RecalculateAll(d)

	for f, v := range map[models.Field]string{
		models.FieldTotalFreight:     d.Calc.TotalFreight,
		models.FieldRevenue:          d.Calc.Revenue,
		models.FieldMargin:           d.Calc.Margin,
		models.FieldMarginPercentage: d.Calc.MarginPercentage,
		models.FieldBalanceToBePaid:  d.Calc.BalanceToBePaid,
		models.FieldVariance:         d.Calc.Variance,
	} {
		if v != "" {
			t.Fatalf("%s should be cleared in fixed mode, got %q", f, v)
		}
	}
	if d.Calc.TotalKM != "150.00" {
		t.Fatalf("TotalKM must survive the mode switch, got %q", d.Calc.TotalKM)
	}
}

func TestDerivedFieldsRejectDirectWrites(t *testing.T) {
	d := newDraft(models.ModeAdhoc)
	if err := d.SetRaw(models.FieldTotalFreight, "9999"); err == nil {
		t.Fatal("derived field write must be rejected")
	}
}

func TestRuleTableIsDependencyOrdered(t *testing.T) {
	seen := map[models.Field]bool{}
	for _, r := range Rules() {
		for _, in := range r.Inputs {
			if in.IsDerived() && !seen[in] {
				t.Fatalf("rule %s consumes %s before it is produced", r.Output, in)
			}
		}
		if seen[r.Output] {
			t.Fatalf("rule %s produced twice", r.Output)
		}
		seen[r.Output] = true
	}
}
