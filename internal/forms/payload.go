package forms

import (
	"fmt"
	"strings"

	"github.com/aos-tools/intake-server/internal/domain"
)

// Payload is the request body of the document-fill service: literal field
// name to text value, plus checkbox name to checked state.
type Payload struct {
	Fields     map[string]string `json:"fields"`
	Checkboxes map[string]bool   `json:"checkboxes"`
}

// FormatUSCISDate renders mm/dd/yyyy, the date format USCIS text fields
// expect. Empty when any component is missing.
func FormatUSCISDate(month, day, year string) string {
	if month == "" || day == "" || year == "" {
		return ""
	}
	if len(day) == 1 {
		day = "0" + day
	}
	return month + "/" + day + "/" + year
}

// FormatMonthYear renders mm/yyyy, used by timeline from/to fields.
func FormatMonthYear(month, year string) string {
	if month == "" || year == "" {
		return ""
	}
	return month + "/" + year
}

// FormatTimeline renders "mm/yyyy to mm/yyyy" or "mm/yyyy to Present", with
// "Unknown" standing in for either missing side.
func FormatTimeline(e domain.AddressEntry) string {
	start := FormatMonthYear(e.StartMonth, e.StartYear)
	end := "Present"
	if !e.IsCurrent {
		end = FormatMonthYear(e.EndMonth, e.EndYear)
	}
	if start == "" && end == "" {
		return ""
	}
	if start == "" {
		start = "Unknown"
	}
	if end == "" {
		end = "Unknown"
	}
	return start + " to " + end
}

// resolved is the outcome of deciding which address fills which slot.
type resolved struct {
	mailing  *domain.AddressEntry
	physical *domain.AddressEntry
	previous []*domain.AddressEntry // len == len(form.Previous); nil slots unfilled
	overflow []domain.AddressEntry
}

// resolveAddresses applies the slot policy: the mailing slot takes
// addresses[0] when mailing==physical and the dedicated mailing record
// otherwise; the physical slot is only distinct when they differ; previous
// slots consume addresses[1:] in order; the rest overflows.
func resolveAddresses(f *Form, data *domain.IntakeData) resolved {
	r := resolved{previous: make([]*domain.AddressEntry, len(f.Previous))}

	primary := data.PrimaryAddress()
	if data.MailingSameAsPhysical {
		r.mailing = primary
		if f.PhysicalFallsBackToMailing {
			r.physical = primary
		}
	} else {
		r.mailing = &data.MailingAddress
		r.physical = primary
	}

	var rest []domain.AddressEntry
	if len(data.Addresses) > 1 {
		rest = data.Addresses[1:]
	}
	for i := range f.Previous {
		if i < len(rest) {
			r.previous[i] = &rest[i]
		}
	}
	if len(rest) > len(f.Previous) {
		r.overflow = rest[len(f.Previous):]
	}
	return r
}

// slotValue extracts the value a slot field carries from an entry. A nil
// entry yields "" for every kind: the payload shape stays stable no matter
// how sparse the intake record is.
func slotValue(kind FieldKind, e *domain.AddressEntry) string {
	if e == nil {
		return ""
	}
	switch kind {
	case Street:
		return e.Street
	case Unit:
		return e.Unit
	case City:
		return e.City
	case State:
		return e.State
	case Zip, PostalZip:
		return e.Zip
	case Country:
		return e.Country
	case DateFrom:
		return FormatMonthYear(e.StartMonth, e.StartYear)
	case DateTo:
		if e.IsCurrent {
			return "Present"
		}
		return FormatMonthYear(e.EndMonth, e.EndYear)
	}
	return ""
}

func writeSlot(fields map[string]string, slot *AddressSlot, e *domain.AddressEntry) {
	if slot == nil {
		return
	}
	for _, sf := range slot.Fields {
		fields[sf.Name] = slotValue(sf.Kind, e)
	}
}

// overflowText serializes addresses that did not fit any dedicated slot as
// newline-joined "<label> <n>: <address> (<timeline>)" lines.
func overflowText(label string, overflow []domain.AddressEntry) string {
	if len(overflow) == 0 {
		return ""
	}
	lines := make([]string, 0, len(overflow))
	for i, e := range overflow {
		parts := make([]string, 0, 6)
		for _, p := range []string{e.Street, e.Unit, e.City, e.State, e.Zip, e.Country} {
			if p != "" {
				parts = append(parts, p)
			}
		}
		address := strings.Join(parts, ", ")
		if address == "" {
			address = "Address missing"
		}
		timeline := FormatTimeline(e)
		if timeline == "" {
			timeline = "Dates missing"
		}
		lines = append(lines, fmt.Sprintf("%s %d: %s (%s)", label, i+1, address, timeline))
	}
	return strings.Join(lines, "\n")
}

func extraValue(kind ExtraKind, data *domain.IntakeData) string {
	switch kind {
	case FamilyName:
		return data.Basics.Petitioner.FamilyName
	case GivenName:
		return data.Basics.Petitioner.GivenName
	case MiddleName:
		return data.Basics.Petitioner.MiddleName
	case DateOfBirth:
		dob := data.Basics.DateOfBirth
		return FormatUSCISDate(dob.Month, dob.Day, dob.Year)
	}
	return ""
}

// BuildPayload projects the intake record onto a form's field schema. An
// unknown slug yields an empty (but non-nil) payload. Every text field the
// form declares is present in the result, empty-stringed when its backing
// value is absent, so the fill request shape never varies with data.
func BuildPayload(slug string, data *domain.IntakeData) Payload {
	p := Payload{
		Fields:     map[string]string{},
		Checkboxes: map[string]bool{},
	}
	f, ok := Catalog[slug]
	if !ok {
		return p
	}

	r := resolveAddresses(f, data)

	writeSlot(p.Fields, f.Mailing, r.mailing)
	writeSlot(p.Fields, f.Physical, r.physical)
	for i := range f.Previous {
		writeSlot(p.Fields, &f.Previous[i], r.previous[i])
	}

	for _, extra := range f.Extras {
		p.Fields[extra.Name] = extraValue(extra.Kind, data)
	}

	info := f.AdditionalInfo
	text := overflowText(info.OverflowLabel, r.overflow)
	setIfNamed := func(name, value string) {
		if name == "" {
			return
		}
		if text == "" {
			value = ""
		}
		p.Fields[name] = value
	}
	setIfNamed(info.TextField, text)
	setIfNamed(info.PageField, info.PageValue)
	setIfNamed(info.PartField, info.PartValue)
	setIfNamed(info.ItemField, info.ItemValue)

	if box, ok := f.RelationshipBoxes[data.Basics.Relationship]; ok {
		p.Checkboxes[box] = true
	}
	if f.SameAddressYes != "" {
		if data.MailingSameAsPhysical {
			p.Checkboxes[f.SameAddressYes] = true
		} else {
			p.Checkboxes[f.SameAddressNo] = true
		}
	}
	if f.LivedAtPreviousYes != "" {
		if filledPrevious(r.previous) {
			p.Checkboxes[f.LivedAtPreviousYes] = true
		} else {
			p.Checkboxes[f.LivedAtPreviousNo] = true
		}
	}
	return p
}

func filledPrevious(previous []*domain.AddressEntry) bool {
	for _, e := range previous {
		if e != nil {
			return true
		}
	}
	return false
}
