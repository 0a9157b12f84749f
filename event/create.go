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

	"github.com/Michael-Hollister/ruma/spec"
	"github.com/Michael-Hollister/ruma/version"
)

// RoomTypeSpace is the room type marking a room as a space.
const RoomTypeSpace = "m.space"

// RoomCreateContent is the event content for https://spec.matrix.org/latest/client-server-api/#mroomcreate
//
// This is the first event in a room and cannot be changed; it acts as the
// root of all other events.
type RoomCreateContent struct {
	// Creator is the user who created the room. Required in room versions 1
	// through 10, removed from room version 11 onwards where the event's
	// sender is used instead.
	Creator spec.UserID
	// Federate is whether users on other servers may join the room. The
	// wire key is "m.federate" and defaults to true.
	Federate bool
	// RoomVersion defaults to room version 1 when absent.
	RoomVersion version.RoomVersion
	// Predecessor references the room this one replaced, if the previous
	// room was upgraded.
	Predecessor *PreviousRoom
	// RoomType is sent under the "type" wire key and is currently only used
	// to mark spaces.
	RoomType string

	// MSC3917 (cryptographically constrained room membership) fields.
	RoomRootKey     string
	CreatorKey      string
	InvitedUserKeys map[spec.UserID]map[string]string
	Signatures      map[spec.UserID]map[string]string
}

func (*RoomCreateContent) EventType() string { return MRoomCreate }

// roomCreateJSON is the wire form of RoomCreateContent. Federate is a
// pointer so that an absent key can be told apart from an explicit false.
type roomCreateJSON struct {
	Creator         spec.UserID                       `json:"creator,omitempty"`
	Federate        *bool                             `json:"m.federate,omitempty"`
	RoomVersion     version.RoomVersion               `json:"room_version,omitempty"`
	Predecessor     *PreviousRoom                     `json:"predecessor,omitempty"`
	RoomType        string                            `json:"type,omitempty"`
	RoomRootKey     string                            `json:"org.matrix.msc3917.v1.room_root_key,omitempty"`
	CreatorKey      string                            `json:"org.matrix.msc3917.v1.creator_key,omitempty"`
	InvitedUserKeys map[spec.UserID]map[string]string `json:"org.matrix.msc3917.v1.invited_user_keys,omitempty"`
	Signatures      map[spec.UserID]map[string]string `json:"org.matrix.msc3917.v1.signatures,omitempty"`
}

// UnmarshalJSON decodes the wire form, applying the documented defaults:
// m.federate defaults to true and room_version to version 1.
func (c *RoomCreateContent) UnmarshalJSON(data []byte) error {
	var wire roomCreateJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	*c = RoomCreateContent{
		Creator:         wire.Creator,
		Federate:        wire.Federate == nil || *wire.Federate,
		RoomVersion:     wire.RoomVersion,
		Predecessor:     wire.Predecessor,
		RoomType:        wire.RoomType,
		RoomRootKey:     wire.RoomRootKey,
		CreatorKey:      wire.CreatorKey,
		InvitedUserKeys: wire.InvitedUserKeys,
		Signatures:      wire.Signatures,
	}
	if c.RoomVersion == "" {
		c.RoomVersion = version.V1
	}
	return nil
}

// MarshalJSON encodes the wire form. m.federate is omitted when it equals
// its documented default of true; room_version is always emitted.
func (c RoomCreateContent) MarshalJSON() ([]byte, error) {
	wire := roomCreateJSON{
		Creator:         c.Creator,
		RoomVersion:     c.RoomVersion,
		Predecessor:     c.Predecessor,
		RoomType:        c.RoomType,
		RoomRootKey:     c.RoomRootKey,
		CreatorKey:      c.CreatorKey,
		InvitedUserKeys: c.InvitedUserKeys,
		Signatures:      c.Signatures,
	}
	if !c.Federate {
		f := false
		wire.Federate = &f
	}
	if wire.RoomVersion == "" {
		wire.RoomVersion = version.V1
	}
	return json.Marshal(wire)
}

// NewRoomCreateContent returns m.room.create content with the given creator,
// as required for room versions 1 through 10.
func NewRoomCreateContent(creator spec.UserID) RoomCreateContent {
	return RoomCreateContent{
		Creator:     creator,
		Federate:    true,
		RoomVersion: version.V1,
	}
}

// NewRoomCreateContentV11 returns m.room.create content with the default
// values and no creator, as introduced in room version 11.
func NewRoomCreateContentV11() RoomCreateContent {
	return RoomCreateContent{
		Federate:    true,
		RoomVersion: version.V11,
	}
}

// RedactedRoomCreateContent is the form of RoomCreateContent after
// redaction.
//
// The redaction rules of this event changed with room version 11: in room
// versions 1 through 10 every field except creator is dropped, from room
// version 11 onwards every field except creator is preserved.
type RedactedRoomCreateContent = RoomCreateContent

// Redact returns the redacted form of the content under the given room
// version. In room versions 1 through 10 only the creator survives, carried
// on an otherwise default-valued shape. From room version 11 onwards the
// creator field is dropped, since the concept it names was removed from the
// protocol in that version, and everything else is preserved.
func (c RoomCreateContent) Redact(v version.RoomVersion) RedactedRoomCreateContent {
	if v.Before(11) {
		return RoomCreateContent{
			Creator:     c.Creator,
			Federate:    true,
			RoomVersion: version.V1,
		}
	}
	redacted := c
	redacted.Creator = ""
	return redacted
}

// PreviousRoom is a reference to an old room replaced during a room version
// upgrade.
type PreviousRoom struct {
	RoomID  spec.RoomID  `json:"room_id"`
	EventID spec.EventID `json:"event_id"`
}
