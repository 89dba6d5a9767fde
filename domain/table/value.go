package table

import (
	"strconv"
	"strings"
)

// Kind classifies a cell
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindNumber
)

// Value is a single spreadsheet cell. Numbers keep their original text so
// String always returns what the sheet showed.
type Value struct {
	Kind Kind
	Text string
	Num  float64
}

// Null is the missing value
var Null = Value{Kind: KindNull}

// ParseValue classifies raw cell text. Only empty cells are null; the text
// is kept as is, surrounding whitespace included.
func ParseValue(raw string) Value {
	if raw == "" {
		return Null
	}
	if n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
		return Value{Kind: KindNumber, Text: raw, Num: n}
	}
	return Value{Kind: KindString, Text: raw}
}

// StringValue builds a string cell without numeric detection
func StringValue(s string) Value {
	if s == "" {
		return Null
	}
	return Value{Kind: KindString, Text: s}
}

// NumberValue builds a numeric cell
func NumberValue(n float64) Value {
	return Value{Kind: KindNumber, Text: strconv.FormatFloat(n, 'f', -1, 64), Num: n}
}

// IsNull reports whether the cell is missing
func (v Value) IsNull() bool {
	return v.Kind == KindNull
}

func (v Value) String() string {
	return v.Text
}

// Less orders numbers ascending before strings, strings lexicographically.
// Nulls sort last.
func (v Value) Less(other Value) bool {
	if v.Kind != other.Kind {
		return kindRank(v.Kind) < kindRank(other.Kind)
	}
	switch v.Kind {
	case KindNumber:
		if v.Num != other.Num {
			return v.Num < other.Num
		}
		return v.Text < other.Text
	default:
		return v.Text < other.Text
	}
}

func kindRank(k Kind) int {
	switch k {
	case KindNumber:
		return 0
	case KindString:
		return 1
	default:
		return 2
	}
}
