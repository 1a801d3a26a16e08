// Package cdc decodes change-data-capture envelopes into the typed records
// the reactors consume. The capture pipeline itself (Debezium in
// production) is an external collaborator; this package only understands
// its wire format.
package cdc

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

// envelope is the subset of a Debezium change event the reactors care
// about: the post-mutation row image. Messages routed through the
// unwrap-smt transform carry the row under "payload" instead.
type envelope struct {
	After   json.RawMessage `json:"after"`
	Payload json.RawMessage `json:"payload"`
}

var null = []byte("null")

// Decode extracts the post-image of a change envelope into out.
//
// It returns (false, nil) when the envelope carries no post-image, e.g. a
// deletion or a tombstone. That is a normal, expected event: the caller
// logs it and moves on. A malformed payload returns an error; the caller
// drops the message without retrying, since redelivery cannot fix it.
func Decode(payload []byte, out interface{}) (bool, error) {
	if len(payload) == 0 {
		return false, nil
	}

	var env envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return false, errors.Wrap(err, "malformed change envelope")
	}

	after := env.After
	if isEmptyNode(after) {
		after = env.Payload
	}
	if isEmptyNode(after) {
		return false, nil
	}

	if err := json.Unmarshal(after, out); err != nil {
		return false, errors.Wrap(err, "undecodable row image")
	}
	return true, nil
}

func isEmptyNode(node json.RawMessage) bool {
	return len(node) == 0 || bytes.Equal(node, null)
}
