package client

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cast"
)

// flag decodes a checkbox-style value. Booleans, numbers and strings such
// as "1", "on" or "true" are accepted; any other non-empty string counts as
// set.
type flag bool

func (f *flag) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case nil:
		*f = false
	case bool, float64:
		b, err := cast.ToBoolE(v)
		if err != nil {
			return err
		}
		*f = flag(b)
	case string:
		switch s := strings.ToLower(strings.TrimSpace(v)); s {
		case "", "off", "no":
			*f = false
		case "on", "yes":
			*f = true
		default:
			b, err := cast.ToBoolE(s)
			*f = flag(b || err != nil)
		}
	default:
		return fmt.Errorf("has_courses: unsupported value %s", data)
	}
	return nil
}
