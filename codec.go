package fuuid

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// MarshalText implements the encoding.TextMarshaler interface
func (id FUUID) MarshalText() ([]byte, error) {
	return id.u.MarshalText()
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
// The receiver is left untouched if data is not a valid FUUID.
func (id *FUUID) UnmarshalText(data []byte) error {
	parsed, err := FromString(string(data))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// MarshalJSON encodes the identifier as a JSON string.
func (id FUUID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.u.String())
}

// UnmarshalJSON decodes a JSON string. null is rejected; use *FUUID or
// NullFUUID for optional values.
func (id *FUUID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return ErrNull
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("fuuid: FUUID must be a JSON string: %w", err)
	}
	return id.UnmarshalText([]byte(s))
}

// MarshalBinary implements the encoding.BinaryMarshaler interface
func (id FUUID) MarshalBinary() ([]byte, error) {
	return id.Bytes(), nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface
func (id *FUUID) UnmarshalBinary(data []byte) error {
	parsed, err := FromBytes(data)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Scan implements the sql.Scanner interface. Text columns are parsed with
// FromString, 16-byte binary columns with FromBytes. NULL yields ErrNull.
func (id *FUUID) Scan(src any) error {
	switch src := src.(type) {
	case nil:
		return ErrNull
	case string:
		return id.UnmarshalText([]byte(src))
	case []byte:
		if len(src) == 16 {
			return id.UnmarshalBinary(src)
		}
		return id.UnmarshalText(src)
	default:
		return fmt.Errorf("fuuid: cannot scan type %T into FUUID", src)
	}
}

// Value implements the driver.Valuer interface for database compatibility
func (id FUUID) Value() (driver.Value, error) {
	return id.String(), nil
}

// NullFUUID represents a FUUID that may be NULL.
type NullFUUID struct {
	FUUID FUUID
	Valid bool // Valid is true if FUUID is not NULL
}

// Scan implements the sql.Scanner interface.
func (n *NullFUUID) Scan(src any) error {
	if src == nil {
		n.FUUID, n.Valid = Nil, false
		return nil
	}
	if err := n.FUUID.Scan(src); err != nil {
		n.Valid = false
		return err
	}
	n.Valid = true
	return nil
}

// Value implements the driver.Valuer interface.
func (n NullFUUID) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.FUUID.Value()
}

// MarshalJSON encodes NULL as JSON null.
func (n NullFUUID) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return n.FUUID.MarshalJSON()
}

// UnmarshalJSON accepts null or a FUUID string.
func (n *NullFUUID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		n.FUUID, n.Valid = Nil, false
		return nil
	}
	if err := n.FUUID.UnmarshalJSON(data); err != nil {
		return err
	}
	n.Valid = true
	return nil
}
