package resume

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
)

// State distinguishes a field the generator omitted from one it returned empty.
type State int

const (
	// Missing means the field was absent or null.
	Missing State = iota
	// Empty means the field was present but carried no usable content.
	Empty
	// Present means the field carried content.
	Present
)

func (s State) String() (name string) {
	switch s {
	case Missing:
		name = "missing"
	case Empty:
		name = "empty"
	case Present:
		name = "present"
	default:
		name = "unknown"
	}

	return name
}

func isNull(data []byte) (null bool) {
	null = bytes.Equal(bytes.TrimSpace(data), []byte("null"))
	return null
}

// Text is an optional string field of a generated payload.
type Text struct {
	Value string
	Set   bool
}

// SomeText returns a Text that was explicitly supplied.
func SomeText(value string) (t Text) {
	t = Text{Value: value, Set: true}
	return t
}

// State reports whether the text is missing, blank, or present.
func (t Text) State() (s State) {
	switch {
	case !t.Set:
		s = Missing
	case strings.TrimSpace(t.Value) == "":
		s = Empty
	default:
		s = Present
	}

	return s
}

// UnmarshalJSON treats null as missing.
func (t *Text) UnmarshalJSON(data []byte) (err error) {
	if isNull(data) {
		*t = Text{}
		return err
	}

	var value string
	err = json.Unmarshal(data, &value)
	if err != nil {
		err = errors.Wrap(err, "expected a string")
		return err
	}

	*t = SomeText(value)
	return err
}

// MarshalJSON writes null for a missing value.
func (t Text) MarshalJSON() (data []byte, err error) {
	if !t.Set {
		data = []byte("null")
		return data, err
	}

	data, err = json.Marshal(t.Value)
	return data, err
}

// List is an optional sequence field of a generated payload.
type List[T any] struct {
	Items []T
	Set   bool
}

// ListOf returns a List that was explicitly supplied.
func ListOf[T any](items ...T) (l List[T]) {
	l = List[T]{Items: items, Set: true}
	if l.Items == nil {
		l.Items = []T{}
	}

	return l
}

// State reports whether the list is missing, empty, or present.
func (l List[T]) State() (s State) {
	switch {
	case !l.Set:
		s = Missing
	case len(l.Items) == 0:
		s = Empty
	default:
		s = Present
	}

	return s
}

// UnmarshalJSON treats null as missing.
func (l *List[T]) UnmarshalJSON(data []byte) (err error) {
	if isNull(data) {
		*l = List[T]{}
		return err
	}

	var items []T
	err = json.Unmarshal(data, &items)
	if err != nil {
		err = errors.Wrap(err, "expected a list")
		return err
	}

	*l = ListOf(items...)
	return err
}

// MarshalJSON writes null for a missing list.
func (l List[T]) MarshalJSON() (data []byte, err error) {
	if !l.Set {
		data = []byte("null")
		return data, err
	}

	items := l.Items
	if items == nil {
		items = []T{}
	}

	data, err = json.Marshal(items)
	return data, err
}

// StringList holds a form field entered either as one block of text or as a
// list of strings. The raw form is split into a list by the normalizers.
type StringList struct {
	Raw    string
	Items  []string
	IsList bool
}

// RawString wraps a single block of text.
func RawString(s string) (sl StringList) {
	sl = StringList{Raw: s}
	return sl
}

// Strings wraps an already split list.
func Strings(items ...string) (sl StringList) {
	sl = StringList{Items: items, IsList: true}
	return sl
}

// Split resolves the field to a list. A raw value is cut at any rune in
// separators, each piece is trimmed and empty pieces are dropped. A list is
// returned as a copy, unchanged.
func (sl StringList) Split(separators string) (items []string) {
	if sl.IsList {
		items = make([]string, len(sl.Items))
		copy(items, sl.Items)
		return items
	}

	items = make([]string, 0)
	pieces := strings.FieldsFunc(sl.Raw, func(r rune) bool {
		return strings.ContainsRune(separators, r)
	})

	for _, piece := range pieces {
		piece = strings.TrimSpace(piece)
		if piece != "" {
			items = append(items, piece)
		}
	}

	return items
}

// ByLine splits a raw value on newlines.
func (sl StringList) ByLine() (items []string) {
	items = sl.Split("\n")
	return items
}

// ByComma splits a raw value on commas.
func (sl StringList) ByComma() (items []string) {
	items = sl.Split(",")
	return items
}

// UnmarshalJSON accepts a string, a list of strings, or null.
func (sl *StringList) UnmarshalJSON(data []byte) (err error) {
	if isNull(data) {
		*sl = StringList{}
		return err
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []string
		err = json.Unmarshal(trimmed, &items)
		if err != nil {
			err = errors.Wrap(err, "expected a list of strings")
			return err
		}

		*sl = Strings(items...)
		return err
	}

	var raw string
	err = json.Unmarshal(trimmed, &raw)
	if err != nil {
		err = errors.Wrap(err, "expected a string or a list of strings")
		return err
	}

	*sl = RawString(raw)
	return err
}

// MarshalJSON writes the form the value was entered in.
func (sl StringList) MarshalJSON() (data []byte, err error) {
	if sl.IsList {
		items := sl.Items
		if items == nil {
			items = []string{}
		}

		data, err = json.Marshal(items)
		return data, err
	}

	data, err = json.Marshal(sl.Raw)
	return data, err
}
