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

	"github.com/sirupsen/logrus"

	"github.com/Michael-Hollister/ruma/spec"
	"github.com/Michael-Hollister/ruma/version"
)

// Event is a room event in the form it is delivered to callers.
type Event struct {
	Content        spec.RawJSON   `json:"content"`
	EventID        spec.EventID   `json:"event_id,omitempty"`
	OriginServerTS spec.Timestamp `json:"origin_server_ts,omitempty"`
	RoomID         spec.RoomID    `json:"room_id,omitempty"` // omitted on /sync responses
	Sender         spec.UserID    `json:"sender,omitempty"`
	StateKey       *string        `json:"state_key,omitempty"`
	Type           string         `json:"type"`
	Unsigned       spec.RawJSON   `json:"unsigned,omitempty"`
	Redacts        spec.EventID   `json:"redacts,omitempty"`
}

// ParseEvent decodes an event envelope from raw JSON.
func ParseEvent(raw spec.RawJSON) (*Event, error) {
	var ev Event
	if err := json.Unmarshal(raw, &ev); err != nil {
		return nil, err
	}
	return &ev, nil
}

// DecodeContent decodes the event's content into its typed form, using the
// state dispatch table when the event carries a state key and the
// message-like one otherwise.
func (e *Event) DecodeContent() (Content, error) {
	return DefaultDecoder.DecodeContent(e)
}

// DecodeContent decodes the event's content into its typed form.
func (d Decoder) DecodeContent(e *Event) (Content, error) {
	if e.StateKey != nil {
		return d.ParseStateContent(e.Type, e.Content)
	}
	return d.ParseMessageLikeContent(e.Type, e.Content)
}

// Redact returns a copy of the event with its content reduced by the
// redaction policy for the given room version and its unsigned metadata
// dropped. The input event is not modified.
func (e *Event) Redact(v version.RoomVersion) Event {
	redacted := *e
	redacted.Content = RedactJSON(e.Type, e.Content, v)
	redacted.Unsigned = nil
	return redacted
}

// SetUnsigned replaces the event's unsigned metadata. Passing a type with an
// IsEmpty method that reports true (or nil) clears it instead, so that empty
// unsigned objects are not sent over the wire.
func (e *Event) SetUnsigned(unsigned interface{}) error {
	type emptiable interface{ IsEmpty() bool }
	if unsigned == nil {
		e.Unsigned = nil
		return nil
	}
	if u, ok := unsigned.(emptiable); ok && u.IsEmpty() {
		e.Unsigned = nil
		return nil
	}
	raw, err := json.Marshal(unsigned)
	if err != nil {
		return err
	}
	e.Unsigned = raw
	return nil
}

// DecodeContentBatch decodes the content of each event, skipping events
// whose content fails to decode. Failures are logged, not returned: a bad
// event from one server must not take down delivery of the others.
func DecodeContentBatch(events []Event) []Content {
	contents := make([]Content, 0, len(events))
	for i := range events {
		content, err := events[i].DecodeContent()
		if err != nil {
			logrus.WithError(err).WithField("event_id", events[i].EventID).Warn(
				"Failed to decode event content",
			)
			continue
		}
		contents = append(contents, content)
	}
	return contents
}
