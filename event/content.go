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
	"github.com/tidwall/sjson"

	"github.com/Michael-Hollister/ruma/spec"
)

// Known event types.
const (
	MRoomMessage           = "m.room.message"
	MSticker               = "m.sticker"
	MRoomRedaction         = "m.room.redaction"
	MRoomCreate            = "m.room.create"
	MRoomName              = "m.room.name"
	MRoomTopic             = "m.room.topic"
	MRoomAvatar            = "m.room.avatar"
	MRoomAliases           = "m.room.aliases"
	MRoomCanonicalAlias    = "m.room.canonical_alias"
	MRoomGuestAccess       = "m.room.guest_access"
	MRoomHistoryVisibility = "m.room.history_visibility"
	MRoomJoinRules         = "m.room.join_rules"
	MRoomMember            = "m.room.member"
	MRoomPowerLevels       = "m.room.power_levels"
	MRoomTombstone         = "m.room.tombstone"
	MRoomThirdPartyInvite  = "m.room.third_party_invite"
	MSpaceChild            = "m.space.child"
)

// Content is implemented by all event content types. EventType returns the
// wire discriminator that selects the type, e.g. "m.room.create".
type Content interface {
	EventType() string
}

// CustomEventContent is the fallback for event types this implementation
// does not recognise. It holds the complete original content object so that
// a decode/encode cycle performed by an intermediary reproduces the payload
// byte-for-byte, including any fields belonging to unknown extensions.
type CustomEventContent struct {
	Type string
	Raw  spec.RawJSON
}

// EventType implements Content.
func (c *CustomEventContent) EventType() string { return c.Type }

// MarshalJSON emits the original content object unchanged.
func (c CustomEventContent) MarshalJSON() ([]byte, error) {
	if c.Raw == nil {
		return []byte("{}"), nil
	}
	return c.Raw, nil
}

// NewCustomEventContent builds content for an event type this implementation
// has no concrete shape for. The fields must be a JSON object.
func NewCustomEventContent(eventType string, fields spec.RawJSON) *CustomEventContent {
	if fields == nil {
		fields = spec.RawJSON("{}")
	}
	return &CustomEventContent{Type: eventType, Raw: fields}
}

// CustomMessageContent is the fallback for unrecognised msgtype values in
// m.room.message events. Like CustomEventContent it round-trips the whole
// original object, msgtype included.
type CustomMessageContent struct {
	MsgTypeValue string
	Raw          spec.RawJSON
}

// EventType implements Content.
func (c *CustomMessageContent) EventType() string { return MRoomMessage }

// MsgType implements MessageContent.
func (c *CustomMessageContent) MsgType() string { return c.MsgTypeValue }

// MarshalJSON emits the original content object unchanged.
func (c CustomMessageContent) MarshalJSON() ([]byte, error) {
	if c.Raw == nil {
		return []byte("{}"), nil
	}
	return c.Raw, nil
}

// NewCustomMessageContent builds message content with an arbitrary msgtype.
// The given fields must be a JSON object; the msgtype key is inserted into
// it so that the result round-trips through the dispatching decoder.
func NewCustomMessageContent(msgtype string, fields spec.RawJSON) (*CustomMessageContent, error) {
	if fields == nil {
		fields = spec.RawJSON("{}")
	}
	raw, err := sjson.SetBytes(fields, "msgtype", msgtype)
	if err != nil {
		return nil, err
	}
	return &CustomMessageContent{MsgTypeValue: msgtype, Raw: raw}, nil
}
