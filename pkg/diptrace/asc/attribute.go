package asc

import (
	"fmt"
	"strconv"
)

// Attribute is a typed leaf value attached to an item.
type Attribute interface {
	// Text returns the attribute as it is written to the file.
	Text() string

	// String returns the attribute value without quoting.
	String() string

	// TypeName names the attribute type in error messages.
	TypeName() string

	clone() Attribute
}

// Quoting tells whether a string attribute is written with double quotes.
type Quoting int

const (
	Quoted Quoting = iota
	Unquoted
)

// StringAttr is a string value. Unquoted strings come from identifiers and
// from the vendor writing bare strings in board files.
type StringAttr struct {
	Value   string
	Quoting Quoting
}

// NewString returns a quoted string attribute.
func NewString(value string) *StringAttr {
	return &StringAttr{Value: value, Quoting: Quoted}
}

func (a *StringAttr) Text() string {
	if a.Quoting == Quoted {
		return `"` + a.Value + `"`
	}
	return a.Value
}

func (a *StringAttr) String() string { return a.Value }
func (a *StringAttr) TypeName() string { return "string" }

func (a *StringAttr) clone() Attribute {
	c := *a
	return &c
}

// IntegerAttr is an integer value with its canonical text.
type IntegerAttr struct {
	value int
	text  string
}

// NewInteger returns an integer attribute with regenerated text.
func NewInteger(v int) *IntegerAttr {
	return &IntegerAttr{value: v, text: strconv.Itoa(v)}
}

func (a *IntegerAttr) Int() int { return a.value }
func (a *IntegerAttr) Text() string { return a.text }
func (a *IntegerAttr) String() string { return a.text }
func (a *IntegerAttr) TypeName() string { return "integer" }

// SetInt replaces the value and regenerates the text.
func (a *IntegerAttr) SetInt(v int) {
	a.value = v
	a.text = strconv.Itoa(v)
}

func (a *IntegerAttr) clone() Attribute {
	c := *a
	return &c
}

// DoubleAttr is a fixed-point value. Regenerated text has three decimals.
type DoubleAttr struct {
	value float64
	text  string
}

// NewDouble returns a double attribute with regenerated text.
func NewDouble(v float64) *DoubleAttr {
	a := &DoubleAttr{}
	a.SetFloat(v)
	return a
}

func (a *DoubleAttr) Float() float64 { return a.value }
func (a *DoubleAttr) Text() string { return a.text }
func (a *DoubleAttr) String() string { return a.text }
func (a *DoubleAttr) TypeName() string { return "double" }

// SetFloat replaces the value. The stored value is the one the new text
// parses back to.
func (a *DoubleAttr) SetFloat(v float64) {
	a.text = formatDouble(v)
	a.value, _ = strconv.ParseFloat(a.text, 64)
}

func (a *DoubleAttr) clone() Attribute {
	c := *a
	return &c
}

// PercentAttr is a double written with a trailing '%'.
type PercentAttr struct {
	value float64
	text  string
}

// NewPercent returns a percent attribute with regenerated text.
func NewPercent(v float64) *PercentAttr {
	a := &PercentAttr{}
	a.SetFloat(v)
	return a
}

func (a *PercentAttr) Float() float64 { return a.value }
func (a *PercentAttr) Text() string { return a.text }
func (a *PercentAttr) String() string { return a.text }
func (a *PercentAttr) TypeName() string { return "percent" }

// SetFloat replaces the value and regenerates the text.
func (a *PercentAttr) SetFloat(v float64) {
	s := formatDouble(v)
	a.text = s + "%"
	a.value, _ = strconv.ParseFloat(s, 64)
}

func (a *PercentAttr) clone() Attribute {
	c := *a
	return &c
}

func formatDouble(v float64) string {
	s := fmt.Sprintf("%.3f", v)
	if s == "-0.000" {
		return "0.000"
	}
	return s
}

// attributeFromToken maps a value token to its attribute type.
func attributeFromToken(tok Token) (Attribute, error) {
	switch tok.Kind {
	case TokenIdentifier, TokenUnquotedString:
		return &StringAttr{Value: tok.Text, Quoting: Unquoted}, nil
	case TokenQuotedString:
		return &StringAttr{Value: tok.Text, Quoting: Quoted}, nil
	case TokenInteger:
		return &IntegerAttr{value: tok.Int, text: tok.Text}, nil
	case TokenFloat:
		return &DoubleAttr{value: tok.Float, text: tok.Text}, nil
	case TokenPercent:
		return &PercentAttr{value: tok.Float, text: tok.Text}, nil
	default:
		return nil, &UnexpectedTokenError{Expected: TokenIdentifier, Found: tok}
	}
}

// Numeric returns the value of an integer, double or percent attribute.
func Numeric(a Attribute) (float64, bool) {
	switch v := a.(type) {
	case *IntegerAttr:
		return float64(v.value), true
	case *DoubleAttr:
		return v.value, true
	case *PercentAttr:
		return v.value, true
	}
	return 0, false
}
