package handlers

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// number accepts a JSON number or a numeric string, since the back-office
// forms submit counters as text. A missing, null or blank value stays unset.
type number struct {
	value float64
	set   bool
}

func (n *number) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err == nil {
		n.value, n.set = f, true
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("number: %w", err)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("number: %q is not numeric", s)
	}
	n.value, n.set = f, true
	return nil
}

func (n number) Int() int { return int(n.value) }

func (n number) Float() float64 { return n.value }
