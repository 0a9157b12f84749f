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

import "github.com/Michael-Hollister/ruma/spec"

// SpaceChildContent is the event content for https://spec.matrix.org/latest/client-server-api/#mspacechild
//
// The admins of a space advertise rooms and subspaces for their space by
// setting m.space.child state events. The state_key is the ID of the child
// room or space.
type SpaceChildContent struct {
	// Via lists candidate servers that can be used to join the room.
	Via []spec.ServerName `json:"via"`
	// Order provides a default ordering among siblings in the room list.
	// Values that are longer than 50 characters or contain characters
	// outside the range \x20 to \x7E are forbidden and should be ignored if
	// received.
	Order string `json:"order,omitempty"`
	// Suggested marks the child as worth showing eagerly in the room list.
	// Defaults to false and is omitted on the wire when false.
	Suggested bool `json:"suggested,omitempty"`

	// MSC3917 (cryptographically constrained room membership) fields.
	SenderKey     string                            `json:"org.matrix.msc3917.v1.sender_key,omitempty"`
	ParentEventID spec.EventID                      `json:"org.matrix.msc3917.v1.parent_event_id,omitempty"`
	RoomRootKey   string                            `json:"org.matrix.msc3917.v1.room_root_key,omitempty"`
	Signatures    map[spec.UserID]map[string]string `json:"org.matrix.msc3917.v1.signatures,omitempty"`
}

func (*SpaceChildContent) EventType() string { return MSpaceChild }

// HierarchySpaceChildEvent is an m.space.child event as returned by the
// space hierarchy APIs: a stripped state event with an added
// origin_server_ts.
type HierarchySpaceChildEvent struct {
	Content        SpaceChildContent `json:"content"`
	Sender         spec.UserID       `json:"sender"`
	StateKey       string            `json:"state_key"`
	OriginServerTS spec.Timestamp    `json:"origin_server_ts"`
}
