// Package forms maps intake data onto the named AcroForm fields of each
// supported USCIS template. The catalog below is the single authoritative
// description of every form's address slots and field names; the payload
// engine and the verification view both derive from it. Field names were
// discovered by listing each template's fields through the fill service.
package forms

import "github.com/aos-tools/intake-server/internal/domain"

// FieldKind selects which piece of an address entry a slot field carries.
type FieldKind int

const (
	Street FieldKind = iota
	Unit
	City
	State
	Zip
	PostalZip // postal-code field that repeats the ZIP
	Blank     // always written empty (Province fields etc.)
	Country
	DateFrom // mm/yyyy residence start
	DateTo   // mm/yyyy residence end, or "Present"
)

// SlotField is one literal PDF field within an address slot.
type SlotField struct {
	Kind FieldKind
	Name string
}

// AddressSlot is a named position on a form where one address's sub-fields
// are written.
type AddressSlot struct {
	Label  string
	Prefix string
	Fields []SlotField
}

// ExtraKind selects a scalar intake value for a non-address field.
type ExtraKind int

const (
	FamilyName ExtraKind = iota
	GivenName
	MiddleName
	DateOfBirth
)

type ExtraField struct {
	Kind ExtraKind
	Name string
}

// AdditionalInfo describes a form's overflow block. The page/part/item
// literals are written only while the overflow text is non-empty.
type AdditionalInfo struct {
	PageField string
	PartField string
	ItemField string
	TextField string

	PageValue string
	PartValue string
	ItemValue string

	// OverflowLabel prefixes each serialized overflow address line.
	OverflowLabel string
}

// Form is one catalog entry. Previous slots are filled in order from the
// address history; anything beyond them lands in the overflow block.
type Form struct {
	Slug        string
	DisplayName string

	Mailing  *AddressSlot
	Physical *AddressSlot
	Previous []AddressSlot

	// PhysicalFallsBackToMailing writes the mailing entry into the physical
	// slot when mailing and physical are the same address, for forms that
	// expect the slot populated either way.
	PhysicalFallsBackToMailing bool

	Extras []ExtraField

	// RelationshipBoxes maps the relationship enum to the one checkbox that
	// must be ticked for it; unmapped values tick nothing.
	RelationshipBoxes map[domain.Relationship]string

	// SameAddressYes/No are the mutually exclusive mailing==physical boxes.
	SameAddressYes string
	SameAddressNo  string

	// LivedAtPreviousYes/No report whether any previous-address slot was
	// filled (the I-485 "lived anywhere else in the last 5 years" pair).
	LivedAtPreviousYes string
	LivedAtPreviousNo  string

	AdditionalInfo AdditionalInfo
}

// uscisSlot builds the common underscore-suffix address block used by the
// I-130 (Pt2Line10/12/14): street, unit, city, state, ZIP repeated into the
// postal-code field, country.
func uscisSlot(label, prefix string) AddressSlot {
	return AddressSlot{
		Label:  label,
		Prefix: prefix,
		Fields: []SlotField{
			{Street, prefix + "_StreetNumberName[0]"},
			{Unit, prefix + "_AptSteFlrNumber[0]"},
			{City, prefix + "_CityOrTown[0]"},
			{State, prefix + "_State[0]"},
			{Zip, prefix + "_ZipCode[0]"},
			{PostalZip, prefix + "_PostalCode[0]"},
			{Country, prefix + "_Country[0]"},
		},
	}
}

// letterSlot builds the I-130A letter-suffix address block (Pt1Line4a..h).
// postal carries the ZIP or stays blank depending on the line.
func letterSlot(label, prefix string, postal FieldKind) AddressSlot {
	return AddressSlot{
		Label:  label,
		Prefix: prefix,
		Fields: []SlotField{
			{Street, prefix + "a_StreetNumberName[0]"},
			{Unit, prefix + "b_AptSteFlrNumber[0]"},
			{City, prefix + "c_CityOrTown[0]"},
			{State, prefix + "d_State[0]"},
			{Zip, prefix + "e_ZipCode[0]"},
			{Blank, prefix + "f_Province[0]"},
			{postal, prefix + "g_PostalCode[0]"},
			{Country, prefix + "h_Country[0]"},
		},
	}
}

// Catalog holds every supported form keyed by slug. Adding a form means
// adding an entry here; the engine does not change.
var Catalog = map[string]*Form{
	"i-130": {
		Slug:        "i-130",
		DisplayName: "I-130 Petition for Alien Relative",
		Mailing: slotPtr(uscisSlot(
			"Mailing address (Pt2, Line 10)",
			"form1[0].#subform[1].Pt2Line10")),
		Physical: slotPtr(uscisSlot(
			"Physical address (Pt2, Line 12)",
			"form1[0].#subform[1].Pt2Line12")),
		Previous: []AddressSlot{uscisSlot(
			"Previous physical address (Pt2, Line 14)",
			"form1[0].#subform[1].Pt2Line14")},
		Extras: []ExtraField{
			{FamilyName, "form1[0].#subform[0].Pt2Line4a_FamilyName[0]"},
			{GivenName, "form1[0].#subform[0].Pt2Line4b_GivenName[0]"},
			{MiddleName, "form1[0].#subform[0].Pt2Line4c_MiddleName[0]"},
			{DateOfBirth, "form1[0].#subform[1].Pt2Line8_DateofBirth[0]"},
		},
		RelationshipBoxes: map[domain.Relationship]string{
			domain.RelationshipSpouse:  "form1[0].#subform[0].Pt1Line1_Spouse[0]",
			domain.RelationshipParent:  "form1[0].#subform[0].Pt1Line1_Parent[0]",
			domain.RelationshipChild:   "form1[0].#subform[0].Pt1Line1_Child[0]",
			domain.RelationshipSibling: "form1[0].#subform[0].Pt1Line1_Siblings[0]",
		},
		SameAddressYes: "form1[0].#subform[1].Pt2Line11_Yes[0]",
		SameAddressNo:  "form1[0].#subform[1].Pt2Line11_No[0]",
		AdditionalInfo: AdditionalInfo{
			PageField:     "form1[0].#subform[11].Pt9Line3a_PageNumber[0]",
			PartField:     "form1[0].#subform[11].Pt9Line3b_PartNumber[0]",
			ItemField:     "form1[0].#subform[11].Pt9Line3c_ItemNumber[0]",
			TextField:     "form1[0].#subform[11].Pt9Line3d_AdditionalInfo[0]",
			PageValue:     "5",
			PartValue:     "2",
			ItemValue:     "10-14",
			OverflowLabel: "Part 2, Item 12-14 (Physical address history continued)",
		},
	},

	"i-130a": {
		Slug:        "i-130a",
		DisplayName: "I-130A Supplemental Information",
		Mailing: slotPtr(letterSlot(
			"Beneficiary mailing address (Pt1, Line 6)",
			"form1[0].#subform[0].Pt1Line6", PostalZip)),
		Physical: slotPtr(letterSlot(
			"Beneficiary physical address (Pt1, Line 4)",
			"form1[0].#subform[0].Pt1Line4", PostalZip)),
		Previous: []AddressSlot{letterSlot(
			"Sponsor address (Pt2, Line 2)",
			"form1[0].#subform[1].Pt2Line2", Blank)},
		PhysicalFallsBackToMailing: true,
		AdditionalInfo: AdditionalInfo{
			PageField:     "form1[0].#subform[5].Pt7Line3a_PageNumber[0]",
			PartField:     "form1[0].#subform[5].Pt7Line3b_PartNumber[0]",
			ItemField:     "form1[0].#subform[5].Pt7Line3c_ItemNumber[0]",
			TextField:     "form1[0].#subform[5].Pt7Line3d_AdditionalInfo[0]",
			PageValue:     "1",
			PartValue:     "1",
			ItemValue:     "4-8",
			OverflowLabel: "Address history (continued)",
		},
	},

	"i-485": {
		Slug:        "i-485",
		DisplayName: "I-485 Adjustment of Status",
		Mailing: &AddressSlot{
			Label:  "Mailing address (Pt1, Line 18 - US)",
			Prefix: "form1[0].#subform[2].Pt1Line18",
			Fields: []SlotField{
				{Street, "form1[0].#subform[2].Pt1Line18_StreetNumberName[0]"},
				{Unit, "form1[0].#subform[2].Pt1Line18US_AptSteFlrNumber[0]"},
				{City, "form1[0].#subform[2].Pt1Line18_CityOrTown[0]"},
				{State, "form1[0].#subform[2].Pt1Line18_State[0]"},
				{Zip, "form1[0].#subform[2].Pt1Line18_ZipCode[0]"},
			},
		},
		Physical: &AddressSlot{
			Label:  "Physical address (Pt1, Line 18 - Current)",
			Prefix: "form1[0].#subform[2].Pt1Line18_Current",
			Fields: []SlotField{
				{Street, "form1[0].#subform[2].Pt1Line18_CurrentStreetNumberName[0]"},
				{Unit, "form1[0].#subform[2].Pt1Line18_CurrentAptSteFlrNumber[0]"},
				{City, "form1[0].#subform[2].Pt1Line18_CurrentCityOrTown[0]"},
				{State, "form1[0].#subform[2].Pt1Line18_CurrentState[0]"},
				{Zip, "form1[0].#subform[2].Pt1Line18_CurrentZipCode[0]"},
			},
		},
		Previous: []AddressSlot{
			{
				Label:  "Prior address (Pt1, Line 18 - Prior)",
				Prefix: "form1[0].#subform[3].Pt1Line18_Prior",
				Fields: []SlotField{
					{Street, "form1[0].#subform[3].Pt1Line18_PriorStreetName[0]"},
					{Unit, "form1[0].#subform[3].Pt1Line18_PriorAddress_Number[0]"},
					{City, "form1[0].#subform[3].Pt1Line18_PriorCity[0]"},
					{State, "form1[0].#subform[3].Pt1Line18_PriorState[0]"},
					{Zip, "form1[0].#subform[3].Pt1Line18_PriorZipCode[0]"},
					{Blank, "form1[0].#subform[3].Pt1Line18_PriorProvince[0]"},
					{Blank, "form1[0].#subform[3].Pt1Line18_PriorPostalCode[0]"},
					{Country, "form1[0].#subform[3].Pt1Line18_PriorCountry[0]"},
					{DateFrom, "form1[0].#subform[3].Pt1Line18_PriorDateFrom[0]"},
					// The template itself omits the underscore here.
					{DateTo, "form1[0].#subform[3].Pt1Line18PriorDateTo[0]"},
				},
			},
			{
				Label:  "Recent address (Pt1, Line 18 - Recent)",
				Prefix: "form1[0].#subform[3].Pt1Line18_Recent",
				Fields: []SlotField{
					{Street, "form1[0].#subform[3].Pt1Line18_RecentStreetName[0]"},
					{Unit, "form1[0].#subform[3].Pt1Line18_RecentNumber[0]"},
					{City, "form1[0].#subform[3].Pt1Line18_RecentCity[0]"},
					{State, "form1[0].#subform[3].Pt1Line18_RecentState[0]"},
					{Zip, "form1[0].#subform[3].Pt1Line18_RecentZipCode[0]"},
					{Blank, "form1[0].#subform[3].Pt1Line18_RecentProvince[0]"},
					{Blank, "form1[0].#subform[3].Pt1Line18_RecentPostalCode[0]"},
					{Country, "form1[0].#subform[3].Pt1Line18_RecentCountry[0]"},
					{DateFrom, "form1[0].#subform[3].Pt1Line18_RecentDateFrom[0]"},
					{DateTo, "form1[0].#subform[3].Pt1Line18_RecentDateTo[0]"},
				},
			},
		},
		SameAddressYes:     "form1[0].#subform[2].Pt1Line18_YN[0]",
		SameAddressNo:      "form1[0].#subform[2].Pt1Line18_YN[1]",
		LivedAtPreviousYes: "form1[0].#subform[3].Pt1Line18_last5yrs_YN[0]",
		LivedAtPreviousNo:  "form1[0].#subform[3].Pt1Line18_last5yrs_YN[1]",
		AdditionalInfo: AdditionalInfo{
			TextField:     "form1[0].#subform[24].P14_Line3_AdditionalInfo[0]",
			OverflowLabel: "Address history (continued)",
		},
	},

	"i-765": {
		Slug:        "i-765",
		DisplayName: "I-765 Employment Authorization",
		Mailing: &AddressSlot{
			Label:  "Mailing address (Pt2, Line 5)",
			Prefix: "form1[0].Page2[0].Pt2Line5",
			Fields: []SlotField{
				// The street field carries the template's Line4b name.
				{Street, "form1[0].Page2[0].Line4b_StreetNumberName[0]"},
				{Unit, "form1[0].Page2[0].Pt2Line5_AptSteFlrNumber[0]"},
				{City, "form1[0].Page2[0].Pt2Line5_CityOrTown[0]"},
				{State, "form1[0].Page2[0].Pt2Line5_State[0]"},
				{Zip, "form1[0].Page2[0].Pt2Line5_ZipCode[0]"},
			},
		},
		Physical: &AddressSlot{
			Label:  "Physical address (Pt2, Line 7)",
			Prefix: "form1[0].Page2[0].Pt2Line7",
			Fields: []SlotField{
				{Street, "form1[0].Page2[0].Pt2Line7_StreetNumberName[0]"},
				{Unit, "form1[0].Page2[0].Pt2Line7_AptSteFlrNumber[0]"},
				{City, "form1[0].Page2[0].Pt2Line7_CityOrTown[0]"},
				{State, "form1[0].Page2[0].Pt2Line7_State[0]"},
				{Zip, "form1[0].Page2[0].Pt2Line7_ZipCode[0]"},
			},
		},
		AdditionalInfo: AdditionalInfo{
			PageField:     "form1[0].Page7[0].Pt6Line3a_PageNumber[0]",
			PartField:     "form1[0].Page7[0].Pt6Line3b_PartNumber[0]",
			ItemField:     "form1[0].Page7[0].Pt6Line3c_ItemNumber[0]",
			TextField:     "form1[0].Page7[0].Pt6Line4d_AdditionalInfo[0]",
			PageValue:     "2",
			PartValue:     "2",
			ItemValue:     "5-7",
			OverflowLabel: "Address history (continued)",
		},
	},

	"i-131": {
		Slug:        "i-131",
		DisplayName: "I-131 Travel Document",
		Mailing: &AddressSlot{
			Label:  "Mailing address (Pt2, Line 3)",
			Prefix: "form1[0].P5[0].Part2_Line3",
			Fields: []SlotField{
				{Street, "form1[0].P5[0].Part2_Line3_StreetNumberName[0]"},
				{Unit, "form1[0].P5[0].Part2_Line3_AptSteFlrNumber[0]"},
				{City, "form1[0].P5[0].Part2_Line3_CityTown[0]"},
				{State, "form1[0].P5[0].Part2_Line3_State[0]"},
				{Zip, "form1[0].P5[0].Part2_Line3_ZipCode[0]"},
				{Blank, "form1[0].P5[0].Part2_Line3_Province[0]"},
				{Blank, "form1[0].P5[0].Part2_Line3_PostalCode[0]"},
				{Country, "form1[0].P5[0].Part2_Line3_Country[0]"},
			},
		},
		Physical: &AddressSlot{
			Label:  "Physical address (Pt2, Line 4)",
			Prefix: "form1[0].P5[0].Part2_Line4",
			Fields: []SlotField{
				{Street, "form1[0].P5[0].Part2_Line4_StreetNumberName[0]"},
				{Unit, "form1[0].P5[0].Part2_Line4_AptSteFlrNumber[0]"},
				{City, "form1[0].P5[0].Part2_Line4_CityTown[0]"},
				{State, "form1[0].P5[0].Part2_Line4_State[0]"},
				{Zip, "form1[0].P5[0].Part2_Line4_ZipCode[0]"},
				{Blank, "form1[0].P5[0].Part2_Line4_Province[0]"},
				{Blank, "form1[0].P5[0].Part2_Line4_PostalCode[0]"},
				{Country, "form1[0].P5[0].Part2_Line4_Country[0]"},
			},
		},
		AdditionalInfo: AdditionalInfo{
			PageField:     "form1[0].#subform[13].Part13_Line3_PageNumber[0]",
			PartField:     "form1[0].#subform[13].Part13_Line3_PartNumber[0]",
			ItemField:     "form1[0].#subform[13].Part13_Line3_ItemNumber[0]",
			TextField:     "form1[0].#subform[13].Part13_Line3_AdditionalInfo[0]",
			PageValue:     "5",
			PartValue:     "2",
			ItemValue:     "3-4",
			OverflowLabel: "Address history (continued)",
		},
	},
}

func slotPtr(s AddressSlot) *AddressSlot { return &s }

// slugOrder keeps listings stable without relying on map iteration.
var slugOrder = []string{"i-130", "i-130a", "i-485", "i-765", "i-131"}

// FormInfo is a slug + display name pair for form pickers.
type FormInfo struct {
	Slug        string `json:"slug"`
	DisplayName string `json:"displayName"`
}

// Available lists every supported form.
func Available() []FormInfo {
	infos := make([]FormInfo, 0, len(slugOrder))
	for _, slug := range slugOrder {
		f := Catalog[slug]
		infos = append(infos, FormInfo{Slug: f.Slug, DisplayName: f.DisplayName})
	}
	return infos
}

// AddressFieldInfo describes one address-oriented region of a form for the
// verification view. Derived from the catalog, never declared separately.
type AddressFieldInfo struct {
	Category string `json:"category"` // mailing | physical | previous | overflow
	Label    string `json:"label"`
	Prefix   string `json:"prefix"`
}

// AddressFieldsForForm returns the address field groups a form uses, or nil
// for an unknown slug.
func AddressFieldsForForm(slug string) []AddressFieldInfo {
	f, ok := Catalog[slug]
	if !ok {
		return nil
	}
	var infos []AddressFieldInfo
	if f.Mailing != nil {
		infos = append(infos, AddressFieldInfo{"mailing", f.Mailing.Label, f.Mailing.Prefix})
	}
	if f.Physical != nil {
		infos = append(infos, AddressFieldInfo{"physical", f.Physical.Label, f.Physical.Prefix})
	}
	for _, prev := range f.Previous {
		infos = append(infos, AddressFieldInfo{"previous", prev.Label, prev.Prefix})
	}
	if f.AdditionalInfo.TextField != "" {
		infos = append(infos, AddressFieldInfo{
			Category: "overflow",
			Label:    "Additional information / overflow addresses",
			Prefix:   f.AdditionalInfo.TextField,
		})
	}
	return infos
}
