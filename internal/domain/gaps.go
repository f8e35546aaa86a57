package domain

import "sort"

// significantGapDays is the threshold beyond which a hole in the address
// timeline requires a user-supplied explanation. Fixed by policy, not by
// any form's requirements.
const significantGapDays = 30

// Gap records a significant hole in the address history: GapDays days
// between the end of the entry identified by AfterEntryID and the start of
// the next newer entry.
type Gap struct {
	AfterEntryID string `json:"afterEntryId"`
	GapDays      int    `json:"gapDays"`
}

// DetectGap returns the day count between the older entry's end and the
// newer entry's start. Either side missing its month or year yields 0 — an
// incomplete entry is an expected editing state, not an error.
func DetectGap(newer, older AddressEntry) int {
	if newer.StartMonth == "" || newer.StartYear == "" ||
		older.EndMonth == "" || older.EndYear == "" {
		return 0
	}
	newStart := MonthYearDate(newer.StartMonth, newer.StartYear, newer.StartDay)
	prevEnd := MonthYearDate(older.EndMonth, older.EndYear, older.EndDay)
	return DaysBetween(prevEnd, newStart)
}

// HasSignificantGap reports whether the hole between the two entries
// exceeds the explanation threshold.
func HasSignificantGap(newer, older AddressEntry) bool {
	return DetectGap(newer, older) > significantGapDays
}

// FindGaps scans the whole history for significant gaps. Entries without a
// usable start date are excluded entirely; the rest are ordered most recent
// first and consecutive pairs compared. Pairs whose newer entry is current
// or lacks an end date are skipped.
func FindGaps(addresses []AddressEntry) []Gap {
	sorted := make([]AddressEntry, 0, len(addresses))
	for _, a := range addresses {
		if a.StartMonth != "" && a.StartYear != "" {
			sorted = append(sorted, a)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		di := MonthYearDate(sorted[i].StartMonth, sorted[i].StartYear, sorted[i].StartDay)
		dj := MonthYearDate(sorted[j].StartMonth, sorted[j].StartYear, sorted[j].StartDay)
		return di.After(dj)
	})

	var gaps []Gap
	for i := 0; i+1 < len(sorted); i++ {
		newer, older := sorted[i], sorted[i+1]
		if newer.IsCurrent || newer.EndMonth == "" || newer.EndYear == "" {
			continue
		}
		if days := DetectGap(newer, older); days > significantGapDays {
			gaps = append(gaps, Gap{AfterEntryID: older.ID, GapDays: days})
		}
	}
	return gaps
}
