package form

import (
	"bytes"
	"encoding/json"
	"errors"
)

// StringList is a multi-valued field that also accepts a single scalar.
// Decoding normalizes the three shapes a client may send: absent (empty
// list), a scalar (one element) and an array (kept as is).
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*l = StringList{}
		return nil
	}

	if len(data) > 0 && data[0] == '[' {
		var items []string
		if err := json.Unmarshal(data, &items); err != nil {
			return errors.New("form: list must contain only strings")
		}
		*l = StringList(items)
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return errors.New("form: value must be a string or a list of strings")
	}
	*l = StringList{single}
	return nil
}

// Values returns the list as a non-nil slice.
func (l StringList) Values() []string {
	out := make([]string, len(l))
	copy(out, l)
	return out
}
