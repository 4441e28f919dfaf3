package codec

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseBool accepts the external format's small fixed token set,
// case-insensitively.
func ParseBool(text string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("codec: %q is not a boolean token", text)
	}
}

// EncodeBool emits the format's canonical upper-case tokens.
func EncodeBool(v bool) string {
	if v {
		return "TRUE"
	}
	return "FALSE"
}

// ParseInt decodes a signed integer, locale-independently.
func ParseInt(text string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("codec: %q is not an integer", text)
	}
	return v, nil
}

// ParseUInt decodes an unsigned integer.
func ParseUInt(text string) (uint64, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(text), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("codec: %q is not an unsigned integer", text)
	}
	return v, nil
}

// ParseDouble decodes a float, locale-independently. A lone "-" decodes to
// 0.0: some widely-circulated documents use it as a "blank" placeholder,
// and the legacy rule is to accept it rather than fail the record.
func ParseDouble(text string) (float64, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "-" {
		return 0.0, nil
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("codec: %q is not a number", text)
	}
	return v, nil
}

// EncodeDouble renders the shortest decimal string that round-trips, never
// in scientific notation.
func EncodeDouble(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// dateLayouts are tried in order; the first successful parse wins. ISO-8601
// first, then RFC-2822, a plain textual form, the two slash-delimited
// numeric forms (month-first before day-first), and finally the legacy
// "day MonthName two-digit-year" form.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"Mon, 02 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 -0700",
	time.ANSIC,
	"01/02/2006",
	"02/01/2006",
	"2 January 06",
}

// ParseDate tries each supported form in order, stopping at the first
// success.
func ParseDate(text string) (time.Time, error) {
	trimmed := strings.TrimSpace(text)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("codec: %q is not a recognizable date", text)
}

// EncodeDate always emits ISO-8601.
func EncodeDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// EscapeText escapes the markup-reserved characters of the external format.
func EscapeText(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}
