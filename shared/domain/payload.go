package domain

import (
	"github.com/forumapi/forum-api/shared/errors"
)

// entitySpec describes how an input entity reports its validation failures.
type entitySpec struct {
	name   string // ENTITY part of the error code
	action string // human readable action for client messages
}

func (s entitySpec) fail(code string) *errors.ValidationError {
	var reason string
	switch code {
	case errors.NotContainNeededProperty:
		reason = "properti yang dibutuhkan tidak ada"
	default:
		reason = "tipe data tidak sesuai"
	}
	return &errors.ValidationError{
		Entity:  s.name,
		Code:    code,
		Message: "tidak dapat " + s.action + " karena " + reason,
	}
}

// stringFields extracts the named keys from payload as strings.
// Presence is checked for every key before any type is checked, so a payload
// that is both incomplete and mistyped always reports the missing property.
// An empty string counts as missing.
func (s entitySpec) stringFields(payload Payload, keys ...string) ([]string, error) {
	for _, key := range keys {
		v, ok := payload[key]
		if !ok || v == nil || v == "" {
			return nil, s.fail(errors.NotContainNeededProperty)
		}
	}

	values := make([]string, 0, len(keys))
	for _, key := range keys {
		str, ok := payload[key].(string)
		if !ok {
			return nil, s.fail(errors.NotMeetDataTypeSpecification)
		}
		values = append(values, str)
	}
	return values, nil
}
