package draft

import (
	"testing"
	"time"

	"fleetops/internal/domain/models"
)

func fixedClock(s string) func() time.Time {
	t, err := time.Parse("2006-01-02 15:04:05", s)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}

func TestGenerateFormat(t *testing.T) {
	g := ARNGenerator{Now: fixedClock("2026-08-27 14:05:09")}
	if got := g.Generate(); got != "ARN-20260827-140509" {
		t.Fatalf("Generate() = %q, want ARN-20260827-140509", got)
	}
}

func TestApplyModeTransition(t *testing.T) {
	g := ARNGenerator{Now: fixedClock("2026-08-27 14:05:09")}
	d := &models.TransactionDraft{ID: "d1", Mode: models.ModeAdhoc}

	g.ApplyModeTransition(d)
	first := d.Calc.AdvanceRequestNo
	if first == "" {
		t.Fatal("entering adhoc should assign an advance request number")
	}

	// repeated transitions while adhoc-like never regenerate
	g2 := ARNGenerator{Now: fixedClock("2026-08-28 09:00:00")}
	d.Mode = models.ModeReplacement
	g2.ApplyModeTransition(d)
	if d.Calc.AdvanceRequestNo != first {
		t.Fatalf("number churned on re-entry: %q -> %q", first, d.Calc.AdvanceRequestNo)
	}

	d.Mode = models.ModeFixed
	g2.ApplyModeTransition(d)
	if d.Calc.AdvanceRequestNo != "" {
		t.Fatalf("returning to fixed should blank the number, got %q", d.Calc.AdvanceRequestNo)
	}

	// a fresh entry after the blank gets a new number
	d.Mode = models.ModeAdhoc
	g2.ApplyModeTransition(d)
	if d.Calc.AdvanceRequestNo != "ARN-20260828-090000" {
		t.Fatalf("re-entry number = %q, want ARN-20260828-090000", d.Calc.AdvanceRequestNo)
	}
}

func TestManagerLifecycle(t *testing.T) {
	m := NewManager()
	m.NewID = func() string { return "fixed-id" }

	d, err := m.Create(models.ModeFixed)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if d.ID != "fixed-id" {
		t.Fatalf("ID = %q, want fixed-id", d.ID)
	}

	got, err := m.Get("fixed-id")
	if err != nil || got != d {
		t.Fatalf("Get returned (%v, %v), want the stored draft", got, err)
	}

	m.Delete("fixed-id")
	if _, err := m.Get("fixed-id"); err == nil {
		t.Fatal("Get after Delete should fail")
	}

	if _, err := m.Create("weekly"); err == nil {
		t.Fatal("unknown mode should be rejected")
	}
}
