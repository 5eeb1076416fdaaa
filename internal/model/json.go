package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Codes is a list of table codes. The backend stores them as numbers or
// strings depending on which client wrote the booking, and older records
// hold a single value rather than a list.
type Codes []string

// UnmarshalJSON accepts an array of numbers/strings or a single scalar.
func (c *Codes) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*c = nil
		return nil
	}

	var raw []json.RawMessage
	if len(data) > 0 && data[0] == '[' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("decoding table codes: %w", err)
		}
	} else {
		raw = []json.RawMessage{data}
	}

	out := make(Codes, 0, len(raw))
	for _, r := range raw {
		s, err := scalarString(r)
		if err != nil {
			return fmt.Errorf("decoding table code %s: %w", r, err)
		}
		if s != "" {
			out = append(out, s)
		}
	}
	*c = out
	return nil
}

// Contains reports whether code is in the list.
func (c Codes) Contains(code string) bool {
	for _, v := range c {
		if v == code {
			return true
		}
	}
	return false
}

// String joins the codes the way the booking table shows them.
func (c Codes) String() string {
	return strings.Join(c, ", ")
}

func scalarString(r json.RawMessage) (string, error) {
	var v any
	dec := json.NewDecoder(bytes.NewReader(r))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return "", err
	}
	switch x := v.(type) {
	case nil:
		return "", nil
	case string:
		return x, nil
	case json.Number:
		return x.String(), nil
	default:
		return "", fmt.Errorf("unsupported type %T", v)
	}
}

// FlexInt decodes integers that may arrive as JSON numbers, numeric
// strings, or empty strings (form fields the browser never coerced).
type FlexInt int

// UnmarshalJSON implements json.Unmarshaler.
func (n *FlexInt) UnmarshalJSON(data []byte) error {
	s, err := scalarString(data)
	if err != nil {
		return fmt.Errorf("decoding integer: %w", err)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		*n = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("decoding integer %q: %w", s, err)
	}
	*n = FlexInt(math.Trunc(f))
	return nil
}

// Int returns the value as an int.
func (n FlexInt) Int() int { return int(n) }

// Ref points at the user who created or edited a booking. The backend
// returns either the bare ID or a populated user document.
type Ref struct {
	ID        string
	FirstName string
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *Ref) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		var doc struct {
			ID        string `json:"_id"`
			AltID     string `json:"id"`
			FirstName string `json:"firstName"`
		}
		if err := json.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("decoding user reference: %w", err)
		}
		r.ID = doc.ID
		if r.ID == "" {
			r.ID = doc.AltID
		}
		r.FirstName = doc.FirstName
		return nil
	}
	s, err := scalarString(data)
	if err != nil {
		return fmt.Errorf("decoding user reference: %w", err)
	}
	r.ID = s
	return nil
}

// MarshalJSON writes the bare ID, which is what the backend accepts.
func (r Ref) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.ID)
}

// UnmarshalJSON accepts numbers as well as strings for each field, since
// contact numbers are stored either way.
func (s *GuestSuggestion) UnmarshalJSON(data []byte) error {
	var doc struct {
		FirstName  json.RawMessage `json:"firstName"`
		SecondName json.RawMessage `json:"secondName"`
		Contact    json.RawMessage `json:"contact"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decoding guest suggestion: %w", err)
	}
	fields := []struct {
		raw json.RawMessage
		dst *string
	}{
		{doc.FirstName, &s.FirstName},
		{doc.SecondName, &s.SecondName},
		{doc.Contact, &s.Contact},
	}
	for _, f := range fields {
		if len(f.raw) == 0 {
			*f.dst = ""
			continue
		}
		v, err := scalarString(f.raw)
		if err != nil {
			return fmt.Errorf("decoding guest suggestion: %w", err)
		}
		*f.dst = v
	}
	return nil
}
