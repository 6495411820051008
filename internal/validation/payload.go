package validation

import (
	"bytes"
	"encoding/json"

	apperrors "rentapi/pkg/errors"
)

// Payload is a decoded request body. Keeping values raw lets the rules tell
// an absent key apart from a key explicitly set to null.
type Payload map[string]json.RawMessage

type fieldState int

const (
	fieldAbsent fieldState = iota
	fieldNull
	fieldPresent
)

var errInvalidBody = apperrors.BadRequest("Invalid request body")

// ParsePayload decodes body into a Payload. An empty body decodes to an empty
// payload; anything that is not a JSON object is rejected.
func ParsePayload(body []byte) (Payload, *apperrors.APIError) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return Payload{}, nil
	}
	if trimmed[0] != '{' {
		return nil, errInvalidBody
	}

	p := Payload{}
	if err := json.Unmarshal(trimmed, &p); err != nil {
		return nil, errInvalidBody
	}
	return p, nil
}

// Empty reports whether the payload carries no keys at all.
func (p Payload) Empty() bool {
	return len(p) == 0
}

func (p Payload) lookup(key string) (json.RawMessage, fieldState) {
	raw, ok := p[key]
	if !ok {
		return nil, fieldAbsent
	}
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return raw, fieldNull
	}
	return raw, fieldPresent
}

func decodeString(raw json.RawMessage) (string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '"' {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

func decodeNumber(raw json.RawMessage) (float64, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || (raw[0] != '-' && (raw[0] < '0' || raw[0] > '9')) {
		return 0, false
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0, false
	}
	return f, true
}

func decodeBool(raw json.RawMessage) (bool, bool) {
	switch string(bytes.TrimSpace(raw)) {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}
