// Package pdf renders a human-readable intake summary: applicant header,
// the full address history with residence timelines and gap annotations,
// and the employment history. Used by the review step; the filled USCIS
// form itself comes from the remote fill service.
package pdf

import (
	"io"
	"strconv"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/aos-tools/intake-server/internal/domain"
)

// GenerateSummary writes the summary report to w.
func GenerateSummary(data *domain.IntakeData, gaps []domain.Gap, w io.Writer) error {
	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetMargins(18, 18, 18)
	pdf.SetAutoPageBreak(true, 18)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	marginL, marginT, marginR, _ := pdf.GetMargins()
	contentW := pageW - marginL - marginR

	// ── Header bar ───────────────────────────────────────────────────────────
	pdf.SetFillColor(30, 30, 30)
	pdf.Rect(marginL, marginT, contentW, 10, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetXY(marginL+2, marginT+1.5)
	pdf.CellFormat(contentW-4, 7, "INTAKE SUMMARY", "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.SetY(marginT + 13)

	drawApplicant(pdf, contentW, data)
	drawAddresses(pdf, contentW, data, gaps)
	drawEmployment(pdf, contentW, data.Employment)

	return pdf.Output(w)
}

func sectionHeader(pdf *fpdf.Fpdf, contentW float64, title string) {
	pdf.Ln(3)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(contentW, 5.5, title, "1", 1, "L", true, 0, "")
}

func drawApplicant(pdf *fpdf.Fpdf, contentW float64, data *domain.IntakeData) {
	sectionHeader(pdf, contentW, "PETITIONER")

	name := strings.TrimSpace(strings.Join([]string{
		data.Basics.Petitioner.GivenName,
		data.Basics.Petitioner.MiddleName,
		data.Basics.Petitioner.FamilyName,
	}, " "))
	dob := data.Basics.DateOfBirth
	birth := ""
	if dob.Month != "" && dob.Year != "" {
		birth = dob.Month + "/" + dob.Day + "/" + dob.Year
	}

	pdf.SetFont("Helvetica", "", 9)
	half := contentW / 2
	pdf.CellFormat(half, 6, "Name: "+name, "L", 0, "L", false, 0, "")
	pdf.CellFormat(half, 6, "Date of birth: "+birth, "R", 1, "L", false, 0, "")
	pdf.CellFormat(half, 6, "Relationship: "+string(data.Basics.Relationship), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(half, 6, "Email: "+data.Contact.Email, "RB", 1, "L", false, 0, "")
}

func drawAddresses(pdf *fpdf.Fpdf, contentW float64, data *domain.IntakeData, gaps []domain.Gap) {
	sectionHeader(pdf, contentW, "ADDRESS HISTORY")

	gapAfter := map[string]int{}
	for _, g := range gaps {
		gapAfter[g.AfterEntryID] = g.GapDays
	}

	addrW := contentW * 0.62
	rangeW := contentW - addrW

	pdf.SetFont("Helvetica", "B", 8.5)
	pdf.CellFormat(addrW, 6, "Address", "1", 0, "L", false, 0, "")
	pdf.CellFormat(rangeW, 6, "Period", "1", 1, "L", false, 0, "")

	for _, a := range data.Addresses {
		pdf.SetFont("Helvetica", "", 8.5)
		pdf.CellFormat(addrW, 6, oneLine(a), "1", 0, "L", false, 0, "")
		period := domain.FormatDateRange(a.StartMonth, a.StartYear, a.EndMonth, a.EndYear)
		if a.IsCurrent {
			period = domain.FormatDateRange(a.StartMonth, a.StartYear, "", "")
		}
		pdf.CellFormat(rangeW, 6, period, "1", 1, "L", false, 0, "")

		if days, ok := gapAfter[a.ID]; ok {
			pdf.SetFont("Helvetica", "I", 8)
			pdf.SetTextColor(160, 80, 0)
			note := "Gap of " + strconv.Itoa(days) + " days follows this address"
			if a.GapExplanation != "" {
				note += " - " + a.GapExplanation
			}
			pdf.CellFormat(contentW, 5, note, "LRB", 1, "L", false, 0, "")
			pdf.SetTextColor(0, 0, 0)
		}
	}

	if !data.MailingSameAsPhysical {
		pdf.SetFont("Helvetica", "", 8.5)
		pdf.CellFormat(contentW, 6, "Mailing: "+oneLine(data.MailingAddress), "1", 1, "L", false, 0, "")
	}
}

func drawEmployment(pdf *fpdf.Fpdf, contentW float64, entries []domain.EmploymentEntry) {
	sectionHeader(pdf, contentW, "EMPLOYMENT HISTORY")

	descW := contentW * 0.62
	rangeW := contentW - descW

	pdf.SetFont("Helvetica", "B", 8.5)
	pdf.CellFormat(descW, 6, "Status / Employer", "1", 0, "L", false, 0, "")
	pdf.CellFormat(rangeW, 6, "Period", "1", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 8.5)
	for _, e := range entries {
		desc := string(e.Status)
		if e.Status == domain.StatusEmployed && e.EmployerName != "" {
			desc = e.EmployerName
			if e.JobTitle != "" {
				desc += " - " + e.JobTitle
			}
		}
		toMonth, toYear := e.ToMonth, e.ToYear
		if e.IsCurrent {
			toMonth, toYear = "", ""
		}
		period := domain.FormatDateRange(e.FromMonth, e.FromYear, toMonth, toYear)
		pdf.CellFormat(descW, 6, desc, "1", 0, "L", false, 0, "")
		pdf.CellFormat(rangeW, 6, period, "1", 1, "L", false, 0, "")
	}
}

// ── Helpers ──────────────────────────────────────────────────────────────────

// oneLine joins the non-empty parts of an address for table display.
func oneLine(a domain.AddressEntry) string {
	parts := make([]string, 0, 6)
	for _, p := range []string{a.Street, a.Unit, a.City, a.State, a.Zip, a.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}
