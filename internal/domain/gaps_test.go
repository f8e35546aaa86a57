package domain_test

import (
	"testing"

	"github.com/aos-tools/intake-server/internal/domain"
)

// histEntry builds a minimal history entry for gap tests; location fields are
// irrelevant to the date arithmetic.
func histEntry(id, startMonth, startYear, endMonth, endYear string, current bool) domain.AddressEntry {
	return domain.AddressEntry{
		ID:         id,
		Street:     "123 Main St",
		City:       "New York",
		State:      "NY",
		Zip:        "10001",
		Country:    "United States",
		StartMonth: startMonth,
		StartYear:  startYear,
		EndMonth:   endMonth,
		EndYear:    endYear,
		IsCurrent:  current,
	}
}

func TestDetectGap(t *testing.T) {
	newer := histEntry("new", "03", "2020", "", "", false)
	older := histEntry("old", "01", "2019", "01", "2020", false)

	// 2020-01-01 -> 2020-03-01: 31 + 29 days (leap year).
	if got := domain.DetectGap(newer, older); got != 60 {
		t.Errorf("DetectGap = %d, want 60", got)
	}
}

func TestDetectGap_MissingDates(t *testing.T) {
	newer := histEntry("new", "", "", "", "", false)
	older := histEntry("old", "01", "2019", "", "", false)

	if got := domain.DetectGap(newer, older); got != 0 {
		t.Errorf("DetectGap with missing newer start = %d, want 0", got)
	}
	if got := domain.DetectGap(histEntry("new", "03", "2020", "", "", false), older); got != 0 {
		t.Errorf("DetectGap with missing older end = %d, want 0", got)
	}
}

// TestDetectGap_DayRefinement verifies stored day fields tighten the month
// boundaries so a same-month handoff does not register as a gap.
func TestDetectGap_DayRefinement(t *testing.T) {
	newer := histEntry("new", "01", "2020", "", "", false)
	newer.StartDay = "15"
	older := histEntry("old", "01", "2019", "01", "2020", false)
	older.EndDay = "14"

	if got := domain.DetectGap(newer, older); got != 1 {
		t.Errorf("DetectGap = %d, want 1", got)
	}
	if domain.HasSignificantGap(newer, older) {
		t.Error("HasSignificantGap = true for a one-day handoff, want false")
	}
}

func TestHasSignificantGap_Threshold(t *testing.T) {
	older := histEntry("old", "01", "2019", "01", "2020", false)

	// Exactly 30 days (2020-01-01 -> 2020-01-31) is not significant.
	at30 := histEntry("new", "01", "2020", "", "", false)
	at30.StartDay = "31"
	if domain.HasSignificantGap(at30, older) {
		t.Error("30-day gap reported significant, want not significant")
	}

	// 31 days (2020-01-01 -> 2020-02-01) crosses the threshold.
	at31 := histEntry("new", "02", "2020", "", "", false)
	if !domain.HasSignificantGap(at31, older) {
		t.Error("31-day gap not reported significant, want significant")
	}
}

func TestFindGaps(t *testing.T) {
	addresses := []domain.AddressEntry{
		histEntry("1", "06", "2022", "", "", true),
		histEntry("2", "01", "2021", "03", "2022", false),
		histEntry("3", "01", "2020", "06", "2020", false),
	}

	gaps := domain.FindGaps(addresses)
	if len(gaps) != 1 {
		t.Fatalf("FindGaps returned %d gaps, want 1 (%+v)", len(gaps), gaps)
	}
	// 2020-06-01 -> 2021-01-01 is 214 days, reported against the older entry.
	if gaps[0].AfterEntryID != "3" {
		t.Errorf("AfterEntryID = %q, want %q", gaps[0].AfterEntryID, "3")
	}
	if gaps[0].GapDays != 214 {
		t.Errorf("GapDays = %d, want 214", gaps[0].GapDays)
	}
}

// TestFindGaps_CurrentEntrySkipped verifies the pair whose newer side is the
// current address is never reported.
func TestFindGaps_CurrentEntrySkipped(t *testing.T) {
	addresses := []domain.AddressEntry{
		histEntry("1", "02", "2020", "", "", true),
		histEntry("2", "01", "2020", "01", "2020", false),
	}
	if gaps := domain.FindGaps(addresses); len(gaps) != 0 {
		t.Errorf("FindGaps = %+v, want none", gaps)
	}
}

func TestFindGaps_IgnoresEntriesWithoutStart(t *testing.T) {
	addresses := []domain.AddressEntry{
		histEntry("1", "06", "2022", "", "", true),
		histEntry("draft", "", "", "", "", false),
	}
	if gaps := domain.FindGaps(addresses); len(gaps) != 0 {
		t.Errorf("FindGaps = %+v, want none", gaps)
	}
}

func TestFindGaps_Empty(t *testing.T) {
	if gaps := domain.FindGaps(nil); len(gaps) != 0 {
		t.Errorf("FindGaps(nil) = %+v, want none", gaps)
	}
}
