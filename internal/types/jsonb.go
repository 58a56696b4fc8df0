package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Metadata is an arbitrary key/value bag stored as a JSONB column
type Metadata map[string]string

func (m Metadata) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

func (m *Metadata) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("unsupported type %T for Metadata", value)
	}
	return json.Unmarshal(b, m)
}

// Tags is a list of free-form labels stored as a JSONB column
type Tags []string

func (t Tags) Value() (driver.Value, error) {
	if t == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(t)
}

func (t *Tags) Scan(value interface{}) error {
	if value == nil {
		*t = nil
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("unsupported type %T for Tags", value)
	}
	return json.Unmarshal(b, t)
}

// StringList is a list of IDs stored as a JSONB column
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("unsupported type %T for StringList", value)
	}
	return json.Unmarshal(b, l)
}
