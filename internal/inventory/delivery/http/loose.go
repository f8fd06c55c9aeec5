package http

import (
	"bytes"
	"encoding/json"
)

// looseValue holds a scalar that may arrive as a JSON string, number or
// boolean, or as a form field. It keeps the textual form.
type looseValue string

func (v *looseValue) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*v = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*v = looseValue(s)
		return nil
	}
	var raw json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*v = looseValue(raw)
	return nil
}

// UnmarshalParam implements binding.BindUnmarshaler for form fields.
func (v *looseValue) UnmarshalParam(param string) error {
	*v = looseValue(param)
	return nil
}

// truthy matches a checked checkbox ("on") or a true boolean.
func (v looseValue) truthy() bool {
	return v == "on" || v == "true"
}
