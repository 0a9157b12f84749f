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
	"github.com/Michael-Hollister/ruma/spec"
	"github.com/Michael-Hollister/ruma/version"
)

// TombstoneContent is the event content for https://spec.matrix.org/latest/client-server-api/#mroomtombstone
//
// A state event signifying that a room has been upgraded to a different room
// version, and that clients should go there.
type TombstoneContent struct {
	// Body is a server-defined message.
	Body string `json:"body"`
	// ReplacementRoom is the new room the client should be visiting.
	ReplacementRoom spec.RoomID `json:"replacement_room"`

	// MSC3917 (cryptographically constrained room membership) fields.
	SenderKey     string                            `json:"org.matrix.msc3917.v1.sender_key,omitempty"`
	ParentEventID spec.EventID                      `json:"org.matrix.msc3917.v1.parent_event_id,omitempty"`
	RoomRootKey   string                            `json:"org.matrix.msc3917.v1.room_root_key,omitempty"`
	Signatures    map[spec.UserID]map[string]string `json:"org.matrix.msc3917.v1.signatures,omitempty"`
}

func (*TombstoneContent) EventType() string { return MRoomTombstone }

// RedactedTombstoneContent is the form of TombstoneContent after redaction:
// no fields survive in any room version.
type RedactedTombstoneContent struct{}

func (*RedactedTombstoneContent) EventType() string { return MRoomTombstone }

// Redact returns the redacted form of the content. The room version does not
// change the outcome for this event type but is taken anyway so that every
// content type redacts through the same shape of call.
func (c TombstoneContent) Redact(v version.RoomVersion) RedactedTombstoneContent {
	return RedactedTombstoneContent{}
}

// PossiblyRedactedTombstoneContent is used when it is not known whether the
// content has been redacted. Every field is optional and callers must cope
// with all of them being absent at once.
type PossiblyRedactedTombstoneContent struct {
	Body            *string      `json:"body,omitempty"`
	ReplacementRoom *spec.RoomID `json:"replacement_room,omitempty"`
}

func (*PossiblyRedactedTombstoneContent) EventType() string { return MRoomTombstone }
