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
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/Michael-Hollister/ruma/spec"
)

// stateContentTypes maps the event type discriminator of every known state
// event to a constructor for its content shape. Dispatch is driven by this
// table alone; event types not listed here decode into the custom fallback.
var stateContentTypes = map[string]func() Content{
	MRoomCreate:            func() Content { return &RoomCreateContent{} },
	MRoomName:              func() Content { return &NameContent{} },
	MRoomTopic:             func() Content { return &TopicContent{} },
	MRoomAvatar:            func() Content { return &AvatarContent{} },
	MRoomAliases:           func() Content { return &AliasesContent{} },
	MRoomCanonicalAlias:    func() Content { return &CanonicalAliasContent{} },
	MRoomGuestAccess:       func() Content { return &GuestAccessContent{} },
	MRoomHistoryVisibility: func() Content { return &HistoryVisibilityContent{} },
	MRoomJoinRules:         func() Content { return &JoinRulesContent{} },
	MRoomMember:            func() Content { return &MemberContent{} },
	MRoomPowerLevels:       func() Content { return &PowerLevelsContent{} },
	MRoomTombstone:         func() Content { return &TombstoneContent{} },
	MRoomThirdPartyInvite:  func() Content { return &ThirdPartyInviteContent{} },
	MSpaceChild:            func() Content { return &SpaceChildContent{} },
}

// messageLikeContentTypes is the dispatch table for message-like events.
// m.room.message is absent because its content needs the msgtype dispatch in
// ParseMessageContent rather than a plain unmarshal.
var messageLikeContentTypes = map[string]func() Content{
	MSticker:       func() Content { return &StickerContent{} },
	MRoomRedaction: func() Content { return &RedactionContent{} },
}

// A Decoder turns raw event content into typed values. The zero value
// recognises stable field names only; use a FeatureSet to additionally
// recognise unstable-namespaced fields of enabled MSCs.
type Decoder struct {
	Features FeatureSet
}

// DefaultDecoder is used by the package-level parse functions.
var DefaultDecoder = Decoder{Features: DefaultFeatureSet()}

// ParseStateContent decodes the content of a state event of the given type.
// Unknown event types decode into *CustomEventContent, preserving the whole
// payload.
func ParseStateContent(eventType string, content spec.RawJSON) (Content, error) {
	return DefaultDecoder.ParseStateContent(eventType, content)
}

// ParseMessageLikeContent decodes the content of a message-like event of the
// given type. For m.room.message this dispatches further on the msgtype
// field. Unknown event types decode into *CustomEventContent.
func ParseMessageLikeContent(eventType string, content spec.RawJSON) (Content, error) {
	return DefaultDecoder.ParseMessageLikeContent(eventType, content)
}

// ParseMessageContent decodes m.room.message content, dispatching on the
// msgtype field. Unknown msgtypes decode into *CustomMessageContent.
func ParseMessageContent(content spec.RawJSON) (*RoomMessageContent, error) {
	return DefaultDecoder.ParseMessageContent(content)
}

// ParseStateContent decodes the content of a state event of the given type.
func (d Decoder) ParseStateContent(eventType string, content spec.RawJSON) (Content, error) {
	if err := requireObject(content, "type"); err != nil {
		return nil, err
	}
	factory, ok := stateContentTypes[eventType]
	if !ok {
		return NewCustomEventContent(eventType, content), nil
	}
	c := factory()
	if err := json.Unmarshal(d.filterUnstable(content), c); err != nil {
		return nil, ShapeError{EventType: eventType, Err: err}
	}
	return c, nil
}

// ParseMessageLikeContent decodes the content of a message-like event of the
// given type.
func (d Decoder) ParseMessageLikeContent(eventType string, content spec.RawJSON) (Content, error) {
	if eventType == MRoomMessage {
		return d.ParseMessageContent(content)
	}
	if err := requireObject(content, "type"); err != nil {
		return nil, err
	}
	factory, ok := messageLikeContentTypes[eventType]
	if !ok {
		return NewCustomEventContent(eventType, content), nil
	}
	c := factory()
	if err := json.Unmarshal(d.filterUnstable(content), c); err != nil {
		return nil, ShapeError{EventType: eventType, Err: err}
	}
	return c, nil
}

// requireObject rejects payloads that aren't JSON objects with a
// DiscriminatorError naming the discriminator field, since a discriminator
// cannot exist on a non-object.
func requireObject(content spec.RawJSON, field string) error {
	parsed := gjson.ParseBytes(content)
	if !parsed.IsObject() {
		return DiscriminatorError{Field: field, Reason: "payload is not a JSON object"}
	}
	return nil
}

// filterUnstable strips top-level wire keys that belong to the unstable
// namespace of an MSC that is not enabled. The raw input is never mutated.
func (d Decoder) filterUnstable(content spec.RawJSON) spec.RawJSON {
	var disabled []string
	gjson.ParseBytes(content).ForEach(func(key, _ gjson.Result) bool {
		for prefix, msc := range unstableKeyOwners {
			if len(key.Str) > len(prefix) && key.Str[:len(prefix)] == prefix && !d.Features.Enabled(msc) {
				disabled = append(disabled, key.Str)
			}
		}
		return true
	})
	if disabled == nil {
		return content
	}
	filtered := make([]byte, len(content))
	copy(filtered, content)
	for _, key := range disabled {
		// Keys with dots need escaping or sjson will treat them as paths.
		filtered, _ = sjson.DeleteBytes(filtered, escapeKey(key))
	}
	return filtered
}

// escapeKey escapes a literal wire key for use as a gjson/sjson path.
func escapeKey(key string) string {
	out := make([]byte, 0, len(key))
	for i := 0; i < len(key); i++ {
		switch key[i] {
		case '.', '*', '?', '|', '#', '@', '\\':
			out = append(out, '\\')
		}
		out = append(out, key[i])
	}
	return string(out)
}

// MarshalContent encodes any event content. Message content gets its msgtype
// discriminator injected, since the concrete shapes don't carry it as a
// field; everything else marshals as-is.
func MarshalContent(c Content) (spec.RawJSON, error) {
	raw, err := json.Marshal(c)
	if err != nil {
		return nil, errors.Wrapf(err, "encoding %q content", c.EventType())
	}
	if mc, ok := c.(MessageContent); ok {
		if _, custom := c.(*CustomMessageContent); !custom {
			raw, err = sjson.SetBytes(raw, "msgtype", mc.MsgType())
			if err != nil {
				return nil, errors.Wrapf(err, "encoding %q content", c.EventType())
			}
		}
	}
	return raw, nil
}
