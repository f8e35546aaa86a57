package domain

import "github.com/google/uuid"

// Relationship of the petitioner to the beneficiary. Each value selects
// exactly one checkbox on forms that ask for it.
type Relationship string

const (
	RelationshipSpouse  Relationship = "spouse"
	RelationshipParent  Relationship = "parent"
	RelationshipChild   Relationship = "child"
	RelationshipSibling Relationship = "sibling"
)

type EmploymentStatus string

const (
	StatusEmployed   EmploymentStatus = "employed"
	StatusUnemployed EmploymentStatus = "unemployed"
	StatusStudent    EmploymentStatus = "student"
	StatusOther      EmploymentStatus = "other"
)

// AddressEntry is one residence period. Months are two-digit strings
// ("01".."12") and years are four-digit strings; days are optional and only
// refine overlap/gap arithmetic. A current address has no end date — any
// stored end values are ignored while IsCurrent is true.
type AddressEntry struct {
	ID             string `json:"id"`
	Street         string `json:"street"`
	Unit           string `json:"unit,omitempty"`
	City           string `json:"city"`
	State          string `json:"state"`
	Zip            string `json:"zip"`
	Country        string `json:"country"`
	StartMonth     string `json:"startMonth"`
	StartYear      string `json:"startYear"`
	StartDay       string `json:"startDay,omitempty"`
	EndMonth       string `json:"endMonth,omitempty"`
	EndYear        string `json:"endYear,omitempty"`
	EndDay         string `json:"endDay,omitempty"`
	IsCurrent      bool   `json:"isCurrent"`
	GapExplanation string `json:"gapExplanation,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

// EmploymentEntry mirrors the address date-range shape for job periods.
// Employer fields are only meaningful when Status is "employed".
type EmploymentEntry struct {
	ID           string           `json:"id"`
	Status       EmploymentStatus `json:"status"`
	EmployerName string           `json:"employerName"`
	JobTitle     string           `json:"jobTitle"`
	City         string           `json:"city"`
	State        string           `json:"state"`
	Country      string           `json:"country"`
	FromMonth    string           `json:"fromMonth"`
	FromYear     string           `json:"fromYear"`
	ToMonth      string           `json:"toMonth"`
	ToYear       string           `json:"toYear"`
	IsCurrent    bool             `json:"isCurrent"`
	Notes        string           `json:"notes"`
}

type PersonName struct {
	GivenName  string `json:"givenName"`
	MiddleName string `json:"middleName"`
	FamilyName string `json:"familyName"`
}

type DateOfBirth struct {
	Month string `json:"month"`
	Day   string `json:"day"`
	Year  string `json:"year"`
}

type Basics struct {
	Relationship Relationship `json:"relationship"`
	Petitioner   PersonName   `json:"petitioner"`
	DateOfBirth  DateOfBirth  `json:"dateOfBirth"`
}

type Contact struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// IntakeData is the aggregate record persisted as a single document.
// Addresses[0] is by convention the current/primary address; use
// PrimaryAddress/CurrentAddress rather than indexing directly.
type IntakeData struct {
	Basics                Basics            `json:"basics"`
	Contact               Contact           `json:"contact"`
	MailingSameAsPhysical bool              `json:"mailingSameAsPhysical"`
	MailingAddress        AddressEntry      `json:"mailingAddress"`
	Addresses             []AddressEntry    `json:"addresses"`
	Employment            []EmploymentEntry `json:"employment"`
}

// NewAddressEntry returns a blank entry with a fresh id. Country defaults to
// United States since that is what nearly every applicant enters.
func NewAddressEntry() AddressEntry {
	return AddressEntry{
		ID:      uuid.NewString(),
		Country: "United States",
	}
}

func NewEmploymentEntry() EmploymentEntry {
	return EmploymentEntry{
		ID:      uuid.NewString(),
		Country: "United States",
	}
}

// DefaultIntakeData is the record a brand-new (or unreadable) session starts
// from: one empty address, one empty employment entry, mailing == physical.
func DefaultIntakeData() IntakeData {
	return IntakeData{
		Basics: Basics{
			Relationship: RelationshipSpouse,
		},
		MailingSameAsPhysical: true,
		MailingAddress:        NewAddressEntry(),
		Addresses:             []AddressEntry{NewAddressEntry()},
		Employment:            []EmploymentEntry{NewEmploymentEntry()},
	}
}

// Normalize repairs a partial or corrupt record so the in-memory shape is
// always usable: empty lists get a single fresh entry, a missing mailing
// address gets a default one. Idempotent.
func (d IntakeData) Normalize() IntakeData {
	if d.MailingAddress.ID == "" {
		d.MailingAddress = NewAddressEntry()
	}
	if len(d.Addresses) == 0 {
		d.Addresses = []AddressEntry{NewAddressEntry()}
	}
	if len(d.Employment) == 0 {
		d.Employment = []EmploymentEntry{NewEmploymentEntry()}
	}
	return d
}

// PrimaryAddress returns the conventional current/primary entry (index 0),
// or nil when the list is empty.
func (d *IntakeData) PrimaryAddress() *AddressEntry {
	if len(d.Addresses) == 0 {
		return nil
	}
	return &d.Addresses[0]
}

// CurrentAddress returns the first entry flagged current, falling back to
// the primary slot so resorting by a view layer cannot lose it.
func (d *IntakeData) CurrentAddress() *AddressEntry {
	for i := range d.Addresses {
		if d.Addresses[i].IsCurrent {
			return &d.Addresses[i]
		}
	}
	return d.PrimaryAddress()
}

// RemoveAddress drops the entry with the given id. The list is never left
// empty: removing the last entry reinstates a single fresh one.
func (d *IntakeData) RemoveAddress(id string) {
	kept := d.Addresses[:0]
	for _, a := range d.Addresses {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	d.Addresses = kept
	if len(d.Addresses) == 0 {
		d.Addresses = []AddressEntry{NewAddressEntry()}
	}
}

// UpdateAddress replaces the entry with a matching id and reports whether
// one was found.
func (d *IntakeData) UpdateAddress(entry AddressEntry) bool {
	for i := range d.Addresses {
		if d.Addresses[i].ID == entry.ID {
			d.Addresses[i] = entry
			return true
		}
	}
	return false
}
