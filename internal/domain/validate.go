package domain

import (
	"regexp"
	"strings"
	"time"
)

// ValidationErrors maps a field key (or "overlap") to a human message.
type ValidationErrors map[string]string

var usZipPattern = regexp.MustCompile(`^\d{5}(-\d{4})?$`)

// rule is one independent validation predicate. Rules are evaluated in
// order against an immutable snapshot of the entry; failed() returning true
// records the message under key. Keeping the set a flat ordered list makes
// each rule unit-testable and the first-error policy explicit.
type rule struct {
	key     string
	message string
	failed  func(a AddressEntry) bool
}

func missing(s string) bool { return strings.TrimSpace(s) == "" }

func isUSCountry(country string) bool {
	switch strings.ToLower(strings.TrimSpace(country)) {
	case "united states", "usa", "us":
		return true
	}
	return false
}

// entryRules is the single-entry rule set shared by every validator entry
// point. Order matters: it decides which message wins in the one-message
// aggregate view.
var entryRules = []rule{
	{"street", "Street address is required", func(a AddressEntry) bool { return missing(a.Street) }},
	{"city", "City is required", func(a AddressEntry) bool { return missing(a.City) }},
	{"state", "State is required", func(a AddressEntry) bool { return missing(a.State) }},
	{"zip", "ZIP code is required", func(a AddressEntry) bool { return missing(a.Zip) }},
	{"country", "Country is required", func(a AddressEntry) bool { return missing(a.Country) }},
	{"startMonth", "Start month is required", func(a AddressEntry) bool { return missing(a.StartMonth) }},
	{"startYear", "Start year is required", func(a AddressEntry) bool { return missing(a.StartYear) }},
	{"startMonth", "Start date must be before end date", func(a AddressEntry) bool {
		if a.IsCurrent || a.StartMonth == "" || a.StartYear == "" || a.EndMonth == "" || a.EndYear == "" {
			return false
		}
		return CompareMonthYear(a.StartMonth, a.StartYear, a.EndMonth, a.EndYear) > 0
	}},
	{"zip", "ZIP code must be 5 digits (or 5+4 format)", func(a AddressEntry) bool {
		return isUSCountry(a.Country) && !missing(a.Zip) && !usZipPattern.MatchString(a.Zip)
	}},
	{"startMonth", "Start date cannot be in the future", func(a AddressEntry) bool {
		return a.StartMonth != "" && a.StartYear != "" && IsInFuture(a.StartMonth, a.StartYear)
	}},
}

// previousRules additionally require a complete end date; current addresses
// are exempt since they have no end by definition.
var previousRules = []rule{
	{"endMonth", "End month is required for previous addresses", func(a AddressEntry) bool { return missing(a.EndMonth) }},
	{"endYear", "End year is required for previous addresses", func(a AddressEntry) bool { return missing(a.EndYear) }},
}

// overlapMessage is the single message used for any interval collision;
// partners are not enumerated.
const overlapMessage = "Address dates overlap with another address"

// interval returns the effective [start, end] of an entry for overlap
// purposes: end is "now" for a current address and collapses to the start
// when a previous address has no stored end date.
func interval(a AddressEntry, now time.Time) (time.Time, time.Time) {
	start := MonthYearDate(a.StartMonth, a.StartYear, a.StartDay)
	switch {
	case a.IsCurrent:
		return start, now
	case a.EndMonth != "" && a.EndYear != "":
		return start, MonthYearDate(a.EndMonth, a.EndYear, a.EndDay)
	default:
		return start, start
	}
}

// Overlaps reports whether the two entries' residence intervals intersect.
// Entries without a usable start date never overlap anything.
func Overlaps(a, b AddressEntry) bool {
	if a.StartMonth == "" || a.StartYear == "" || b.StartMonth == "" || b.StartYear == "" {
		return false
	}
	now := time.Now().UTC()
	startA, endA := interval(a, now)
	startB, endB := interval(b, now)
	return !startA.After(endB) && !startB.After(endA)
}

func runRules(a AddressEntry, rules []rule, errs ValidationErrors) {
	for _, r := range rules {
		if _, claimed := errs[r.key]; claimed {
			continue
		}
		if r.failed(a) {
			errs[r.key] = r.message
		}
	}
}

// ValidateAddress checks one entry against the full rule set and its
// siblings, returning every failing field at once. The overlap check always
// runs, even when field errors exist, so the editing UI can surface both
// (first matching partner wins, reported under the "overlap" key).
func ValidateAddress(entry AddressEntry, all []AddressEntry) ValidationErrors {
	errs := ValidationErrors{}
	runRules(entry, entryRules, errs)
	for _, other := range all {
		if other.ID == entry.ID {
			continue
		}
		if Overlaps(entry, other) {
			errs["overlap"] = overlapMessage
			break
		}
	}
	return errs
}

// ValidatePreviousAddress is ValidateAddress plus the end-date requirements
// that apply to entries presented in a previous-address slot.
func ValidatePreviousAddress(entry AddressEntry, all []AddressEntry) ValidationErrors {
	errs := ValidateAddress(entry, all)
	runRules(entry, previousRules, errs)
	return errs
}

// ValidateAllAddresses produces at most one message per entry id for the
// history summary view. Single-entry rules take priority: the first failing
// rule's message is recorded and the entry's overlap check is skipped.
// Entries that pass every rule are then tested for overlap against the
// entries after them in list order.
func ValidateAllAddresses(addresses []AddressEntry) map[string]string {
	errs := map[string]string{}
	for i, addr := range addresses {
		if msg, failed := firstFailure(addr); failed {
			errs[addr.ID] = msg
			continue
		}
		for j := i + 1; j < len(addresses); j++ {
			if Overlaps(addr, addresses[j]) {
				errs[addr.ID] = overlapMessage
				break
			}
		}
	}
	return errs
}

func firstFailure(a AddressEntry) (string, bool) {
	for _, r := range entryRules {
		if r.failed(a) {
			return r.message, true
		}
	}
	return "", false
}
