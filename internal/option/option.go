// Package option defines the selectable emergency kinds and fetches them from
// the remote endpoint.
package option

import (
	"errors"

	"emergencycard/internal/jsonutil"
)

// EnvelopeField is the object field that wraps the option array in the
// wrapped response shape.
const EnvelopeField = "emergencyKinds"

// Option is one selectable item. IDs are unique within a list.
type Option struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Result is the outcome of a fetch. OK=false is the empty variant: no options
// are available and no error is surfaced to the user.
type Result struct {
	Options []Option
	OK      bool
}

// Loaded returns the success variant.
func Loaded(options []Option) Result {
	if options == nil {
		options = []Option{}
	}
	return Result{Options: options, OK: true}
}

// Empty returns the empty variant.
func Empty() Result {
	return Result{}
}

// Normalize decodes either a bare array of options or an object wrapping that
// array into the ordered option list.
func Normalize(body []byte) ([]Option, error) {
	switch {
	case jsonutil.IsArray(body):
		return jsonutil.UnmarshalArrayAllowEmpty[Option](body, "decode options")
	case jsonutil.IsObject(body):
		raw, err := jsonutil.ArrayField(body, EnvelopeField, "decode options envelope")
		if err != nil {
			return nil, err
		}
		return jsonutil.UnmarshalArrayAllowEmpty[Option](raw, "decode options")
	}
	return nil, errors.New("decode options: body is neither an array nor an object")
}
