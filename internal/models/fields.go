package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"gorm.io/datatypes"
)

// Payload is a request body decoded only one level deep. Values stay raw so
// that each recognized key can be decoded into its own column type.
type Payload map[string]json.RawMessage

// FieldError reports a recognized key whose value cannot be stored in its column.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// fieldSet maps every mass-assignable JSON key of T to the address of its struct field.
type fieldSet[T any] map[string]func(*T) any

// apply copies every recognized key of p into dst. Unknown keys are dropped,
// keys absent from p leave the field untouched and an explicit null clears it.
func (fs fieldSet[T]) apply(dst *T, p Payload) error {
	for key, raw := range p {
		field, ok := fs[key]
		if !ok {
			continue
		}
		if err := decodeField(raw, field(dst)); err != nil {
			return &FieldError{Field: key, Err: err}
		}
	}
	return nil
}

// columns lists the recognized keys present in p, sorted. Allow-listed keys
// double as column names.
func (fs fieldSet[T]) columns(p Payload) []string {
	cols := make([]string, 0, len(p))
	for key := range p {
		if _, ok := fs[key]; ok {
			cols = append(cols, key)
		}
	}
	sort.Strings(cols)
	return cols
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func decodeField(raw json.RawMessage, dst any) error {
	switch d := dst.(type) {
	case *datatypes.JSON:
		// stored opaquely, only compacted
		if isNull(raw) {
			*d = nil
			return nil
		}
		var buf bytes.Buffer
		if err := json.Compact(&buf, raw); err != nil {
			return err
		}
		*d = datatypes.JSON(buf.Bytes())
		return nil
	case **datatypes.Date:
		if isNull(raw) {
			*d = nil
			return nil
		}
		date, err := parseDate(raw)
		if err != nil {
			return err
		}
		*d = &date
		return nil
	}
	return json.Unmarshal(raw, dst)
}

var dateLayouts = []string{time.DateOnly, time.RFC3339Nano, time.DateTime}

func parseDate(raw json.RawMessage) (datatypes.Date, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return datatypes.Date{}, err
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			y, m, d := t.Date()
			return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC)), nil
		}
	}
	return datatypes.Date{}, fmt.Errorf("unrecognized date %q", s)
}
