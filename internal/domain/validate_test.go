package domain_test

import (
	"strconv"
	"testing"
	"time"

	"github.com/aos-tools/intake-server/internal/domain"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func completeCurrent(id string) domain.AddressEntry {
	return domain.AddressEntry{
		ID:         id,
		Street:     "123 Main St",
		City:       "New York",
		State:      "NY",
		Zip:        "10001",
		Country:    "United States",
		StartMonth: "01",
		StartYear:  "2020",
		IsCurrent:  true,
	}
}

func completePrevious(id, sm, sy, em, ey string) domain.AddressEntry {
	a := completeCurrent(id)
	a.IsCurrent = false
	a.StartMonth, a.StartYear = sm, sy
	a.EndMonth, a.EndYear = em, ey
	return a
}

// ---------------------------------------------------------------------------
// Single-entry rules
// ---------------------------------------------------------------------------

func TestValidateAddress_CompleteEntryPasses(t *testing.T) {
	entry := completeCurrent("a")
	errs := domain.ValidateAddress(entry, []domain.AddressEntry{entry})
	if len(errs) != 0 {
		t.Errorf("ValidateAddress = %v, want no errors", errs)
	}
}

func TestValidateAddress_RequiredFields(t *testing.T) {
	errs := domain.ValidateAddress(domain.AddressEntry{ID: "a"}, nil)

	want := map[string]string{
		"street":     "Street address is required",
		"city":       "City is required",
		"state":      "State is required",
		"zip":        "ZIP code is required",
		"country":    "Country is required",
		"startMonth": "Start month is required",
		"startYear":  "Start year is required",
	}
	for key, msg := range want {
		if errs[key] != msg {
			t.Errorf("errs[%q] = %q, want %q", key, errs[key], msg)
		}
	}
	if len(errs) != len(want) {
		t.Errorf("got %d errors, want %d: %v", len(errs), len(want), errs)
	}
}

func TestValidateAddress_WhitespaceIsMissing(t *testing.T) {
	entry := completeCurrent("a")
	entry.Street = "   "
	errs := domain.ValidateAddress(entry, nil)
	if errs["street"] != "Street address is required" {
		t.Errorf("errs[street] = %q, want required message", errs["street"])
	}
}

func TestValidateAddress_ZipFormat(t *testing.T) {
	tests := []struct {
		name    string
		country string
		zip     string
		wantErr bool
	}{
		{"US five digits", "United States", "10001", false},
		{"US zip+4", "United States", "10001-1234", false},
		{"US bad zip", "United States", "1234", true},
		{"US letters", "usa", "abcde", true},
		{"case-insensitive country", "US", "1234", true},
		{"international exempt", "Canada", "K1A 0B1", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := completeCurrent("a")
			entry.Country = tt.country
			entry.Zip = tt.zip
			errs := domain.ValidateAddress(entry, nil)
			_, got := errs["zip"]
			if got != tt.wantErr {
				t.Errorf("zip error present = %v, want %v (errs=%v)", got, tt.wantErr, errs)
			}
		})
	}
}

func TestValidateAddress_StartAfterEnd(t *testing.T) {
	entry := completePrevious("a", "06", "2021", "01", "2020")
	errs := domain.ValidateAddress(entry, nil)
	if errs["startMonth"] != "Start date must be before end date" {
		t.Errorf("errs[startMonth] = %q, want ordering message", errs["startMonth"])
	}
}

func TestValidateAddress_CurrentExemptFromOrdering(t *testing.T) {
	// Stale end values on a current address are ignored.
	entry := completeCurrent("a")
	entry.EndMonth, entry.EndYear = "01", "2019"
	errs := domain.ValidateAddress(entry, nil)
	if _, ok := errs["startMonth"]; ok {
		t.Errorf("current entry got ordering error: %v", errs)
	}
}

func TestValidateAddress_FutureStart(t *testing.T) {
	entry := completeCurrent("a")
	entry.StartYear = strconv.Itoa(time.Now().Year() + 1)
	errs := domain.ValidateAddress(entry, nil)
	if errs["startMonth"] != "Start date cannot be in the future" {
		t.Errorf("errs[startMonth] = %q, want future message", errs["startMonth"])
	}
}

func TestValidatePreviousAddress_RequiresEndDate(t *testing.T) {
	entry := completeCurrent("a")
	entry.IsCurrent = false
	errs := domain.ValidatePreviousAddress(entry, nil)

	if errs["endMonth"] != "End month is required for previous addresses" {
		t.Errorf("errs[endMonth] = %q, want end-month message", errs["endMonth"])
	}
	if errs["endYear"] != "End year is required for previous addresses" {
		t.Errorf("errs[endYear] = %q, want end-year message", errs["endYear"])
	}
}

// ---------------------------------------------------------------------------
// Overlap detection
// ---------------------------------------------------------------------------

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b domain.AddressEntry
		want bool
	}{
		{
			"intersecting previous periods",
			completePrevious("a", "01", "2020", "06", "2020"),
			completePrevious("b", "05", "2020", "12", "2020"),
			true,
		},
		{
			"disjoint periods",
			completePrevious("a", "01", "2020", "02", "2020"),
			completePrevious("b", "03", "2020", "04", "2020"),
			false,
		},
		{
			"touching boundary counts as overlap",
			completePrevious("a", "01", "2020", "03", "2020"),
			completePrevious("b", "03", "2020", "05", "2020"),
			true,
		},
		{
			"current after previous ended",
			completeCurrent("a"),
			completePrevious("b", "01", "2018", "12", "2019"),
			false,
		},
		{
			"missing end collapses to start",
			completePrevious("a", "06", "2020", "", ""),
			completePrevious("b", "01", "2020", "12", "2020"),
			true,
		},
		{
			"missing start never overlaps",
			domain.AddressEntry{ID: "a"},
			completePrevious("b", "01", "2020", "12", "2020"),
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := domain.Overlaps(tt.a, tt.b); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
			if got := domain.Overlaps(tt.b, tt.a); got != tt.want {
				t.Errorf("Overlaps reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestValidateAddress_OverlapAlongsideFieldErrors verifies the per-entry view
// reports overlap even when field errors are also present.
func TestValidateAddress_OverlapAlongsideFieldErrors(t *testing.T) {
	entry := completePrevious("a", "01", "2020", "06", "2020")
	entry.Street = ""
	sibling := completePrevious("b", "05", "2020", "12", "2020")

	errs := domain.ValidateAddress(entry, []domain.AddressEntry{entry, sibling})
	if _, ok := errs["street"]; !ok {
		t.Errorf("missing street error: %v", errs)
	}
	if errs["overlap"] != "Address dates overlap with another address" {
		t.Errorf("errs[overlap] = %q, want overlap message", errs["overlap"])
	}
}

// ---------------------------------------------------------------------------
// Aggregate view
// ---------------------------------------------------------------------------

// TestValidateAllAddresses verifies the one-message-per-entry policy: field
// errors win for an entry, and only clean entries are tested for overlap.
func TestValidateAllAddresses(t *testing.T) {
	clean := completePrevious("clean", "05", "2020", "12", "2020")
	broken := completePrevious("broken", "01", "2020", "06", "2020")
	broken.City = ""

	errs := domain.ValidateAllAddresses([]domain.AddressEntry{clean, broken})

	if errs["broken"] != "City is required" {
		t.Errorf("errs[broken] = %q, want city message", errs["broken"])
	}
	if errs["clean"] != "Address dates overlap with another address" {
		t.Errorf("errs[clean] = %q, want overlap message", errs["clean"])
	}
}

func TestValidateAllAddresses_FirstRuleWins(t *testing.T) {
	errs := domain.ValidateAllAddresses([]domain.AddressEntry{{ID: "blank"}})
	if errs["blank"] != "Street address is required" {
		t.Errorf("errs[blank] = %q, want the first rule's message", errs["blank"])
	}
	if len(errs) != 1 {
		t.Errorf("got %d messages, want 1", len(errs))
	}
}

func TestValidateAllAddresses_CleanHistory(t *testing.T) {
	addresses := []domain.AddressEntry{
		completeCurrent("now"),
		completePrevious("before", "01", "2018", "12", "2019"),
	}
	if errs := domain.ValidateAllAddresses(addresses); len(errs) != 0 {
		t.Errorf("ValidateAllAddresses = %v, want none", errs)
	}
}
