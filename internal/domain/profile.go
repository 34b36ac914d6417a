package domain

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strconv"
	"strings"
)

// HoursCustom is the hours choice that unlocks the free-form custom hours field.
const HoursCustom = "Custom"

// Amount is a money value that decodes from a JSON number or a numeric
// string ("500").
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	raw := string(data)
	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = strings.TrimSpace(unquoted)
		if raw == "" {
			*a = 0
			return nil
		}
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return &json.UnmarshalTypeError{Value: string(data), Type: reflect.TypeOf(*a)}
	}
	*a = Amount(f)
	return nil
}

// UserRef is the owner identity embedded in profile views.
type UserRef struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// customHoursFor keeps custom hours only when the hours choice is Custom.
func customHoursFor(choice, custom string) *string {
	if choice != HoursCustom {
		return nil
	}
	return optionalString(custom)
}

func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// NormalizeTags trims entries, drops empties and collapses duplicates while
// keeping first-seen order.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

func trim(s string) string {
	return strings.TrimSpace(s)
}
