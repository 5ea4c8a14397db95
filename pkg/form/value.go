package form

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/dmitrymomot/cashflow/pkg/validator"
)

// Kind enumerates the shapes a control value can take.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindText
	KindNumber
	KindBool
	KindDate
	KindObject
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindDate:
		return "date"
	case KindObject:
		return "object"
	case KindList:
		return "list"
	default:
		return "unknown"
	}
}

// Ref is an option picked from a search input: a stored record id and its label.
type Ref struct {
	ID    int64
	Label string
}

// Value is the content of a control. The zero Value is Empty.
type Value struct {
	kind Kind
	text string
	num  float64
	flag bool
	date time.Time
	ref  Ref
	list []Value
}

func Empty() Value { return Value{} }

func Text(s string) Value { return Value{kind: KindText, text: s} }

func Number(n float64) Value { return Value{kind: KindNumber, num: n} }

func Bool(b bool) Value { return Value{kind: KindBool, flag: b} }

func Date(t time.Time) Value { return Value{kind: KindDate, date: t} }

func Object(id int64, label string) Value {
	return Value{kind: KindObject, ref: Ref{ID: id, Label: label}}
}

func List(items ...Value) Value {
	return Value{kind: KindList, list: append([]Value(nil), items...)}
}

// ValueOf converts untrusted input into a Value. Unknown types are rendered
// with fmt and stored as Text.
func ValueOf(v any) Value {
	switch x := v.(type) {
	case nil:
		return Empty()
	case Value:
		return x
	case string:
		return Text(x)
	case *string:
		if x == nil {
			return Empty()
		}
		return Text(*x)
	case bool:
		return Bool(x)
	case int:
		return Number(float64(x))
	case int8:
		return Number(float64(x))
	case int16:
		return Number(float64(x))
	case int32:
		return Number(float64(x))
	case int64:
		return Number(float64(x))
	case uint:
		return Number(float64(x))
	case uint8:
		return Number(float64(x))
	case uint16:
		return Number(float64(x))
	case uint32:
		return Number(float64(x))
	case uint64:
		return Number(float64(x))
	case float32:
		return Number(float64(x))
	case float64:
		return Number(x)
	case decimal.Decimal:
		return Number(x.InexactFloat64())
	case time.Time:
		return Date(x)
	case *time.Time:
		if x == nil {
			return Empty()
		}
		return Date(*x)
	case Ref:
		return Object(x.ID, x.Label)
	case []Value:
		return List(x...)
	case []string:
		items := make([]Value, len(x))
		for i, s := range x {
			items[i] = Text(s)
		}
		return List(items...)
	case []any:
		items := make([]Value, len(x))
		for i, s := range x {
			items[i] = ValueOf(s)
		}
		return List(items...)
	default:
		return Text(fmt.Sprint(x))
	}
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsEmpty() bool { return v.kind == KindEmpty }

// HasContent is false for Empty, "" and an empty list. Every other value,
// including 0 and false, has content.
func (v Value) HasContent() bool {
	return validator.HasContent(v.Interface())
}

// Truthy reports whether the value counts as present for rules that skip
// absent input: Empty, "", 0, NaN and false are not.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindEmpty:
		return false
	case KindText:
		return v.text != ""
	case KindNumber:
		return v.num != 0 && !math.IsNaN(v.num)
	case KindBool:
		return v.flag
	default:
		return true
	}
}

// Len returns the rune count of Text and the item count of List.
func (v Value) Len() (int, bool) {
	switch v.kind {
	case KindText:
		return utf8.RuneCountInString(v.text), true
	case KindList:
		return len(v.list), true
	default:
		return 0, false
	}
}

// Float reads a number from Number or Text. Text is parsed permissively,
// so "12abc" yields 12.
func (v Value) Float() (float64, bool) {
	switch v.kind {
	case KindNumber:
		if math.IsNaN(v.num) {
			return 0, false
		}
		return v.num, true
	case KindText:
		return validator.ParseNumber(v.text)
	default:
		return 0, false
	}
}

// Time reads a date from Date or from Text in one of the accepted layouts.
func (v Value) Time() (time.Time, bool) {
	switch v.kind {
	case KindDate:
		return v.date, true
	case KindText:
		t, err := validator.ParseDate(strings.TrimSpace(v.text))
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	default:
		return time.Time{}, false
	}
}

func (v Value) AsText() (string, bool) {
	return v.text, v.kind == KindText
}

func (v Value) AsBool() (bool, bool) {
	return v.flag, v.kind == KindBool
}

func (v Value) AsObject() (Ref, bool) {
	return v.ref, v.kind == KindObject
}

func (v Value) AsList() ([]Value, bool) {
	return v.list, v.kind == KindList
}

// Interface returns the underlying Go value: nil, string, float64, bool,
// time.Time, Ref or []any.
func (v Value) Interface() any {
	switch v.kind {
	case KindText:
		return v.text
	case KindNumber:
		return v.num
	case KindBool:
		return v.flag
	case KindDate:
		return v.date
	case KindObject:
		return v.ref
	case KindList:
		items := make([]any, len(v.list))
		for i, item := range v.list {
			items[i] = item.Interface()
		}
		return items
	default:
		return nil
	}
}

// Equal compares two values. Numbers and numeric text compare by value,
// so Number(5) equals Text("5"); objects compare by id.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		a, aok := v.strictFloat()
		b, bok := other.strictFloat()
		return aok && bok && a == b
	}

	switch v.kind {
	case KindEmpty:
		return true
	case KindText:
		return v.text == other.text
	case KindNumber:
		return v.num == other.num
	case KindBool:
		return v.flag == other.flag
	case KindDate:
		return v.date.Equal(other.date)
	case KindObject:
		return v.ref.ID == other.ref.ID
	case KindList:
		if len(v.list) != len(other.list) {
			return false
		}
		for i := range v.list {
			if !v.list[i].Equal(other.list[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// strictFloat is the whole-string conversion used by Equal.
func (v Value) strictFloat() (float64, bool) {
	switch v.kind {
	case KindNumber:
		return v.num, true
	case KindBool:
		if v.flag {
			return 1, true
		}
		return 0, true
	case KindText:
		n, err := strconv.ParseFloat(strings.TrimSpace(v.text), 64)
		return n, err == nil
	default:
		return 0, false
	}
}

func (v Value) String() string {
	switch v.kind {
	case KindText:
		return v.text
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.flag)
	case KindDate:
		return v.date.Format(validator.DateLayout)
	case KindObject:
		return v.ref.Label
	case KindList:
		parts := make([]string, len(v.list))
		for i, item := range v.list {
			parts[i] = item.String()
		}
		return strings.Join(parts, ",")
	default:
		return ""
	}
}
