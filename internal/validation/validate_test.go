package validation

import (
	"strings"
	"testing"

	"fleetops/internal/domain/models"
)

func validFixedDraft() *models.TransactionDraft {
	return &models.TransactionDraft{
		ID:   "d1",
		Mode: models.ModeFixed,
		Master: models.MasterData{
			VehicleIDs: []int64{3},
			DriverIDs:  []int64{7},
		},
		Trip: models.TransactionData{
			Date:      "2026-08-27",
			TripNo:    "42",
			OpeningKM: "100",
			ClosingKM: "250",
		},
	}
}

func validAdhocDraft() *models.TransactionDraft {
	return &models.TransactionDraft{
		ID:   "d2",
		Mode: models.ModeAdhoc,
		Master: models.MasterData{
			VehicleNumber: "MH12AB1234",
			VendorName:    "Sharma Logistics",
			DriverName:    "R. Kumar",
			DriverNumber:  "9876543210",
		},
		Trip: models.TransactionData{
			Date:      "2026-08-27",
			TripNo:    "ADH-17",
			OpeningKM: "100",
			ClosingKM: "250",
		},
	}
}

func TestValidDrafts(t *testing.T) {
	for _, d := range []*models.TransactionDraft{validFixedDraft(), validAdhocDraft()} {
		res := Validate(d)
		if !res.Valid {
			t.Fatalf("mode %s: expected valid, got errors %v", d.Mode, res.Errors)
		}
		if res.First != "" {
			t.Fatalf("mode %s: First should be empty on a valid draft, got %q", d.Mode, res.First)
		}
	}
}

func TestFixedRequiresIDSelections(t *testing.T) {
	d := validFixedDraft()
	d.Master.VehicleIDs = nil
	d.Master.DriverIDs = nil

	res := Validate(d)
	if res.Valid {
		t.Fatal("expected invalid")
	}
	if res.Errors[models.FieldVehicleIDs] == "" || res.Errors[models.FieldDriverIDs] == "" {
		t.Fatalf("missing id-set errors: %v", res.Errors)
	}
	// vehicle selection is highlighted before the driver selection
	if res.First != models.FieldVehicleIDs {
		t.Fatalf("First = %q, want %q", res.First, models.FieldVehicleIDs)
	}
}

func TestAdhocIgnoresIDSelections(t *testing.T) {
	d := validAdhocDraft()
	d.Master.VehicleIDs = nil
	d.Master.DriverIDs = nil
	if res := Validate(d); !res.Valid {
		t.Fatalf("adhoc should not require id sets, got %v", res.Errors)
	}
}

func TestPhoneFormat(t *testing.T) {
	cases := []struct {
		value string
		ok    bool
	}{
		{"9876543210", true},
		{"NA", true},
		{"n/a", true},
		{"987654321", false},   // 9 digits
		{"98765432100", false}, // 11 digits
		{"98765x3210", false},
	}
	for _, tc := range cases {
		d := validAdhocDraft()
		d.Master.DriverNumber = tc.value
		res := Validate(d)
		if got := res.Errors[models.FieldDriverNumber] == ""; got != tc.ok {
			t.Fatalf("driver number %q: ok=%v, want %v (errors %v)", tc.value, got, tc.ok, res.Errors)
		}
	}
}

func TestAadharFormat(t *testing.T) {
	d := validAdhocDraft()
	d.Master.DriverAadharNumber = "123456789012"
	if res := Validate(d); !res.Valid {
		t.Fatalf("12-digit aadhar should pass, got %v", res.Errors)
	}

	d.Master.DriverAadharNumber = "12345678901"
	res := Validate(d)
	if res.Errors[models.FieldDriverAadharNumber] == "" {
		t.Fatal("11-digit aadhar should fail")
	}

	// optional: blank is fine
	d.Master.DriverAadharNumber = ""
	if res := Validate(d); !res.Valid {
		t.Fatalf("blank aadhar should pass, got %v", res.Errors)
	}
}

func TestReplacementDriverNumberConditional(t *testing.T) {
	d := validAdhocDraft()
	d.Mode = models.ModeReplacement
	if res := Validate(d); !res.Valid {
		t.Fatalf("no replacement driver named, should pass: %v", res.Errors)
	}

	d.Master.ReplacementDriverName = "S. Patel"
	res := Validate(d)
	if res.Errors[models.FieldReplacementDriverNo] == "" {
		t.Fatal("named replacement driver requires a number")
	}

	d.Master.ReplacementDriverNo = "9123456780"
	if res := Validate(d); !res.Valid {
		t.Fatalf("should pass with a valid number: %v", res.Errors)
	}

	// "NA" name means no replacement happened
	d.Master.ReplacementDriverName = "NA"
	d.Master.ReplacementDriverNo = ""
	if res := Validate(d); !res.Valid {
		t.Fatalf("NA replacement name should not require a number: %v", res.Errors)
	}
}

func TestTripNoPerMode(t *testing.T) {
	d := validFixedDraft()
	d.Trip.TripNo = "ABC"
	res := Validate(d)
	if res.Errors[models.FieldTripNo] == "" {
		t.Fatal("fixed trip no must be a positive whole number")
	}

	d.Trip.TripNo = "0"
	if res := Validate(d); res.Errors[models.FieldTripNo] == "" {
		t.Fatal("zero trip no should fail in fixed mode")
	}

	a := validAdhocDraft()
	a.Trip.TripNo = "ABC"
	if res := Validate(a); !res.Valid {
		t.Fatalf("free-text trip no is fine in adhoc: %v", res.Errors)
	}

	a.Trip.TripNo = strings.Repeat("x", 51)
	if res := Validate(a); res.Errors[models.FieldTripNo] == "" {
		t.Fatal("over-long adhoc trip no should fail")
	}
}

func TestClosingKMOrder(t *testing.T) {
	d := validFixedDraft()
	d.Trip.OpeningKM = "500"
	d.Trip.ClosingKM = "500"
	res := Validate(d)
	if res.Errors[models.FieldClosingKM] == "" {
		t.Fatal("closing km equal to opening km should fail")
	}

	d.Trip.ClosingKM = "499"
	if res := Validate(d); res.Errors[models.FieldClosingKM] == "" {
		t.Fatal("closing km below opening km should fail")
	}

	// ordering is not checked until both values parse
	d.Trip.ClosingKM = "abc"
	res = Validate(d)
	if res.Errors[models.FieldClosingKM] != "" {
		t.Fatalf("unparsable closing km should not trip the order check, got %q", res.Errors[models.FieldClosingKM])
	}
}

func TestFirstInvalidFollowsFocusOrder(t *testing.T) {
	d := validFixedDraft()
	d.Trip.Date = ""
	d.Trip.TripNo = ""
	d.Master.DriverIDs = nil
	res := Validate(d)
	if res.First != models.FieldDate {
		t.Fatalf("First = %q, want %q", res.First, models.FieldDate)
	}

	a := validAdhocDraft()
	a.Master.VendorName = ""
	a.Master.DriverNumber = "12345"
	res = Validate(a)
	if res.First != models.FieldVendorName {
		t.Fatalf("First = %q, want %q", res.First, models.FieldVendorName)
	}
}
