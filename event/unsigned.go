// Copyright 2024 The Matrix.org Foundation C.I.C.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package event

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/Michael-Hollister/ruma/spec"
)

// Unsigned metadata is attached to an event by the serving side after the
// content is fixed. It is computed fresh on every delivery and is never part
// of the canonical event record used for hashing and signing.

// MessageUnsigned is the unsigned metadata of a message-like event.
type MessageUnsigned struct {
	// Age is the time in milliseconds since the event was sent. It is
	// computed by the local server from the origin timestamp and may be
	// negative or overlarge if the two servers' clocks are out of sync.
	Age *int64 `json:"age,omitempty"`
	// TransactionID echoes the sender's idempotency token, only when the
	// client receiving the event is the one that sent it.
	TransactionID string `json:"transaction_id,omitempty"`
	// Relations are the bundled aggregations of related child events.
	Relations *BundledRelations `json:"m.relations,omitempty"`
}

// IsEmpty reports whether all fields are absent, in which case the unsigned
// key is omitted on encode. Do not use it to determine whether an incoming
// unsigned object was present: it could have contained only unknown fields.
func (u *MessageUnsigned) IsEmpty() bool {
	return u == nil || (u.Age == nil && u.TransactionID == "" && u.Relations.IsEmpty())
}

// StateUnsigned is the unsigned metadata of a state event.
type StateUnsigned struct {
	Age           *int64 `json:"age,omitempty"`
	TransactionID string `json:"transaction_id,omitempty"`
	// PrevContent is the content the state key held before this event, in
	// its possibly-redacted form.
	PrevContent spec.RawJSON      `json:"prev_content,omitempty"`
	Relations   *BundledRelations `json:"m.relations,omitempty"`
}

// IsEmpty reports whether all fields are absent.
func (u *StateUnsigned) IsEmpty() bool {
	return u == nil || (u.Age == nil && u.TransactionID == "" && u.PrevContent == nil && u.Relations.IsEmpty())
}

// RedactedUnsigned is the unsigned metadata of an event that has been
// redacted.
type RedactedUnsigned struct {
	// RedactedBecause is the redaction event that caused the event to be
	// redacted.
	RedactedBecause *RedactionCauseEvent `json:"redacted_because,omitempty"`
}

// RedactionCauseEvent is a redaction event as found under
// unsigned.redacted_because. The ID of the event it redacts is known from
// context wherever this type appears, so it carries none.
type RedactionCauseEvent struct {
	Content        RedactionContent `json:"content"`
	EventID        spec.EventID     `json:"event_id"`
	Sender         spec.UserID      `json:"sender"`
	OriginServerTS spec.Timestamp   `json:"origin_server_ts"`
	Unsigned       *MessageUnsigned `json:"unsigned,omitempty"`
}

// ParseMessageUnsigned decodes the unsigned object of a message-like event.
func ParseMessageUnsigned(raw spec.RawJSON) (*MessageUnsigned, error) {
	var u MessageUnsigned
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil, errors.Wrap(err, "decoding message unsigned metadata")
	}
	return &u, nil
}

// ParseStateUnsigned decodes the unsigned object of a state event.
func ParseStateUnsigned(raw spec.RawJSON) (*StateUnsigned, error) {
	var u StateUnsigned
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil, errors.Wrap(err, "decoding state unsigned metadata")
	}
	return &u, nil
}

// ParseRedactedUnsigned decodes the unsigned object of a redacted event.
func ParseRedactedUnsigned(raw spec.RawJSON) (*RedactedUnsigned, error) {
	var u RedactedUnsigned
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil, errors.Wrap(err, "decoding redacted unsigned metadata")
	}
	return &u, nil
}
