// Package validation decides whether a create or update payload may reach the
// store, and if not, which single error the client gets back.
//
// Fields are checked in a fixed order and the first failure wins; errors are
// never aggregated.
package validation

import (
	"encoding/json"
	"regexp"
	"strings"

	apperrors "rentapi/pkg/errors"
)

var (
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	digitsPattern   = regexp.MustCompile(`^[0-9]+$`)
	errEmptyPayload = apperrors.BadRequest("Empty payload is not allowed")
)

// rule checks one field. missing and null are reported before check runs.
type rule struct {
	key     string
	missing *apperrors.APIError
	null    *apperrors.APIError
	check   func(raw json.RawMessage) *apperrors.APIError
}

func run(p Payload, rules []rule) *apperrors.APIError {
	for _, r := range rules {
		raw, state := p.lookup(r.key)
		switch state {
		case fieldAbsent:
			return r.missing
		case fieldNull:
			return r.null
		}
		if r.check == nil {
			continue
		}
		if err := r.check(raw); err != nil {
			return err
		}
	}
	return nil
}

// IsValidID reports whether a path identifier is structurally usable.
// Clients that serialise a missing id into the URL send "null" or "undefined".
func IsValidID(id string) bool {
	switch strings.TrimSpace(id) {
	case "", "null", "undefined":
		return false
	}
	return true
}

// ========== check builders ==========

// text decodes a string into dst. Empty strings fail with empty.
func text(dst *string, wrongType, empty *apperrors.APIError) func(json.RawMessage) *apperrors.APIError {
	return func(raw json.RawMessage) *apperrors.APIError {
		s, ok := decodeString(raw)
		if !ok {
			return wrongType
		}
		if s == "" {
			return empty
		}
		*dst = s
		return nil
	}
}

// matching decodes a string into dst and requires it to match re.
func matching(dst *string, re *regexp.Regexp, invalid *apperrors.APIError) func(json.RawMessage) *apperrors.APIError {
	return func(raw json.RawMessage) *apperrors.APIError {
		s, ok := decodeString(raw)
		if !ok || !re.MatchString(s) {
			return invalid
		}
		*dst = s
		return nil
	}
}

// positive decodes a number into dst and requires it to be above zero.
func positive(dst *float64, wrongType, zero, negative *apperrors.APIError) func(json.RawMessage) *apperrors.APIError {
	return func(raw json.RawMessage) *apperrors.APIError {
		f, ok := decodeNumber(raw)
		if !ok {
			return wrongType
		}
		if f == 0 {
			return zero
		}
		if f < 0 {
			return negative
		}
		*dst = f
		return nil
	}
}

func boolean(dst *bool, wrongType *apperrors.APIError) func(json.RawMessage) *apperrors.APIError {
	return func(raw json.RawMessage) *apperrors.APIError {
		b, ok := decodeBool(raw)
		if !ok {
			return wrongType
		}
		*dst = b
		return nil
	}
}
