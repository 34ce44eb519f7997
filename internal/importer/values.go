package importer

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidDate   = errors.New("unrecognized date format")
	ErrInvalidAmount = errors.New("unrecognized amount format")
)

var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

var (
	yearFirstPattern = regexp.MustCompile(`^(\d{4})[/.-](\d{1,2})[/.-](\d{1,2})$`)
	monthFirstLong   = regexp.MustCompile(`^(\d{1,2})[/.-](\d{1,2})[/.-](\d{4})$`)
	monthFirstShort  = regexp.MustCompile(`^(\d{1,2})[/.-](\d{1,2})[/.-](\d{2})$`)
)

// ParseDate accepts ISO dates first, then numeric dates. Numeric dates that
// do not start with a four digit year are read as MM/DD/YYYY; there is no
// locale detection.
func ParseDate(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	// Drop a trailing time of day such as "03/15/2024 10:22"
	if i := strings.IndexByte(s, ' '); i > 0 {
		s = s[:i]
	}

	if m := yearFirstPattern.FindStringSubmatch(s); m != nil {
		return buildDate(m[1], m[2], m[3])
	}
	if m := monthFirstLong.FindStringSubmatch(s); m != nil {
		return buildDate(m[3], m[1], m[2])
	}
	if m := monthFirstShort.FindStringSubmatch(s); m != nil {
		return buildDate("20"+m[3], m[1], m[2])
	}
	return time.Time{}, ErrInvalidDate
}

func buildDate(year, month, day string) (time.Time, error) {
	y, _ := strconv.Atoi(year)
	m, _ := strconv.Atoi(month)
	d, _ := strconv.Atoi(day)

	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	if t.Year() != y || int(t.Month()) != m || t.Day() != d {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

var amountNoise = strings.NewReplacer("$", "", "€", "", "£", "", ",", "")

// ParseAmount reads a signed amount. Currency symbols, thousands separators
// and whitespace are ignored; a value wrapped in parentheses is negative.
func ParseAmount(raw string) (decimal.Decimal, error) {
	s := strings.Join(strings.Fields(raw), "")
	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}

	s = amountNoise.Replace(s)
	if s == "" {
		return decimal.Zero, ErrInvalidAmount
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	if negative {
		amount = amount.Abs().Neg()
	}
	return amount, nil
}
