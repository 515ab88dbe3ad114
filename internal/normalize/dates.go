package normalize

import (
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// Clock supplies the current time. Tests inject a fixed clock so the
// "today" fallback for unreadable dates stays deterministic.
type Clock func() time.Time

// SystemClock is the wall clock.
func SystemClock() time.Time { return time.Now() }

// Bill date text layouts, tried in order: day/month/2-digit year, then
// day/month/4-digit year.
var billDateFormats = []string{
	"2/1/06",
	"2/1/2006",
}

// BillDateDisplay is the layout used when printing bill dates.
const BillDateDisplay = "02/01/06"

// Serials are accepted only when they land in this range of years. Raw
// cell values carry no type, so a bare number such as "2024" in a text
// cell would otherwise read as a date in 1905.
const (
	minSerialYear = 1950
	maxSerialYear = 2099
)

// ParseBillDate resolves a bill date cell. A positive number whose date
// falls in [minSerialYear, maxSerialYear] is treated as a spreadsheet date
// serial; otherwise the text is tried against
// billDateFormats. When nothing matches, today's date from now is used.
// It never fails.
func ParseBillDate(raw string, date1904 bool, now Clock) time.Time {
	s := strings.TrimSpace(raw)
	if t, ok := serialDate(s, date1904); ok {
		return t
	}
	for _, layout := range billDateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return today(now)
}

func serialDate(s string, date1904 bool) (time.Time, bool) {
	serial, err := strconv.ParseFloat(s, 64)
	if err != nil || serial <= 0 {
		return time.Time{}, false
	}
	t, err := excelize.ExcelDateToTime(serial, date1904)
	if err != nil || t.Year() < minSerialYear || t.Year() > maxSerialYear {
		return time.Time{}, false
	}
	return dateOnly(t), true
}

func today(now Clock) time.Time {
	if now == nil {
		now = SystemClock
	}
	return dateOnly(now())
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
