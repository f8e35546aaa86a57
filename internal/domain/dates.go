package domain

import (
	"strconv"
	"time"
)

var monthAbbrevs = map[string]string{
	"01": "Jan", "02": "Feb", "03": "Mar", "04": "Apr",
	"05": "May", "06": "Jun", "07": "Jul", "08": "Aug",
	"09": "Sep", "10": "Oct", "11": "Nov", "12": "Dec",
}

// MonthOption is a select-list entry for month pickers.
type MonthOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// MonthOptions returns the twelve months with two-digit values.
func MonthOptions() []MonthOption {
	return []MonthOption{
		{"01", "January"}, {"02", "February"}, {"03", "March"},
		{"04", "April"}, {"05", "May"}, {"06", "June"},
		{"07", "July"}, {"08", "August"}, {"09", "September"},
		{"10", "October"}, {"11", "November"}, {"12", "December"},
	}
}

// YearOptions returns a rolling window of twelve years, current year first.
func YearOptions() []string {
	current := time.Now().Year()
	years := make([]string, 0, 12)
	for i := 0; i < 12; i++ {
		years = append(years, strconv.Itoa(current-i))
	}
	return years
}

// atoi parses leniently: month/year fields are free-text while the user is
// mid-edit, so anything unparsable degrades to 0 instead of an error.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// CompareMonthYear orders two month/year pairs: year first, then month.
// Negative when the first is earlier, zero when equal.
func CompareMonthYear(month1, year1, month2, year2 string) int {
	if y1, y2 := atoi(year1), atoi(year2); y1 != y2 {
		return y1 - y2
	}
	return atoi(month1) - atoi(month2)
}

// IsInFuture reports whether month/year is later than the current calendar
// month.
func IsInFuture(month, year string) bool {
	now := time.Now()
	y, m := atoi(year), atoi(month)
	if y > now.Year() {
		return true
	}
	return y == now.Year() && m > int(now.Month())
}

// MonthYearDate converts month/year strings to a calendar date. Day defaults
// to the 1st when absent; stored days refine overlap and gap arithmetic so
// same-month transitions do not register as gaps.
func MonthYearDate(month, year, day string) time.Time {
	d := 1
	if day != "" {
		d = atoi(day)
	}
	return time.Date(atoi(year), time.Month(atoi(month)), d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the signed day count b - a.
func DaysBetween(a, b time.Time) int {
	return int(b.Sub(a) / (24 * time.Hour))
}

// FormatDateRange renders "Jan 2020 - Dec 2022", "Jan 2020 - Present" when
// the end is open, or "" when there is no start.
func FormatDateRange(startMonth, startYear, endMonth, endYear string) string {
	if startMonth == "" || startYear == "" {
		return ""
	}
	start := monthLabel(startMonth) + " " + startYear
	end := "Present"
	if endMonth != "" && endYear != "" {
		end = monthLabel(endMonth) + " " + endYear
	}
	return start + " - " + end
}

func monthLabel(month string) string {
	if abbrev, ok := monthAbbrevs[month]; ok {
		return abbrev
	}
	return month
}
