package utils

import (
	"strconv"
	"strings"
)

// NullLiteral is the bare token written for absent values.
const NullLiteral = "null"

// EscapeQuotes renders a string field as a SQL literal: nil becomes the bare
// token null, anything else is single-quoted with embedded quotes doubled.
func EscapeQuotes(val *string) string {
	if val == nil {
		return NullLiteral
	}
	return "'" + strings.ReplaceAll(*val, "'", "''") + "'"
}

// IntLiteral renders an integer field unquoted.
func IntLiteral(val *int64) string {
	if val == nil {
		return NullLiteral
	}
	return strconv.FormatInt(*val, 10)
}

// FloatLiteral renders a decimal field using the shortest representation
// that round-trips, so 4.5 stays 4.5 and 100 stays 100.
func FloatLiteral(val *float64) string {
	if val == nil {
		return NullLiteral
	}
	return strconv.FormatFloat(*val, 'f', -1, 64)
}

func BoolLiteral(val *bool) string {
	if val == nil {
		return NullLiteral
	}
	return strconv.FormatBool(*val)
}
