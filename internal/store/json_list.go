package store

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// stringList stores a []string as a JSON array column. NULL and empty
// values scan into an empty, non-nil list.
type stringList []string

// Value implements driver.Valuer.
func (l stringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	data, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner.
func (l *stringList) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*l = stringList{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into string list", src)
	}

	if len(data) == 0 {
		*l = stringList{}
		return nil
	}

	var out []string
	if err := json.Unmarshal(data, &out); err != nil {
		return fmt.Errorf("invalid string list: %w", err)
	}
	if out == nil {
		out = []string{}
	}
	*l = out
	return nil
}
