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

// NameContent is the event content for https://spec.matrix.org/latest/client-server-api/#mroomname
type NameContent struct {
	Name string `json:"name"`
}

func (*NameContent) EventType() string { return MRoomName }

// TopicContent is the event content for https://spec.matrix.org/latest/client-server-api/#mroomtopic
type TopicContent struct {
	Topic string `json:"topic"`
}

func (*TopicContent) EventType() string { return MRoomTopic }

// GuestAccessContent is the event content for https://spec.matrix.org/latest/client-server-api/#mroomguest_access
type GuestAccessContent struct {
	GuestAccess string `json:"guest_access"`
}

func (*GuestAccessContent) EventType() string { return MRoomGuestAccess }

// HistoryVisibilityContent is the event content for https://spec.matrix.org/latest/client-server-api/#mroomhistory_visibility
type HistoryVisibilityContent struct {
	HistoryVisibility string `json:"history_visibility"`
}

func (*HistoryVisibilityContent) EventType() string { return MRoomHistoryVisibility }

// AliasesContent is the event content for the historical m.room.aliases
// state event, which newer room versions no longer give special meaning to.
type AliasesContent struct {
	Aliases []spec.RoomAlias `json:"aliases"`
}

func (*AliasesContent) EventType() string { return MRoomAliases }

// CanonicalAliasContent is the event content for https://spec.matrix.org/latest/client-server-api/#mroomcanonical_alias
type CanonicalAliasContent struct {
	Alias      spec.RoomAlias   `json:"alias,omitempty"`
	AltAliases []spec.RoomAlias `json:"alt_aliases,omitempty"`
}

func (*CanonicalAliasContent) EventType() string { return MRoomCanonicalAlias }

// AvatarContent is the event content for https://spec.matrix.org/latest/client-server-api/#mroomavatar
type AvatarContent struct {
	Info *ImageInfo `json:"info,omitempty"`
	URL  string     `json:"url"`
}

func (*AvatarContent) EventType() string { return MRoomAvatar }

// ImageInfo is metadata about an image, used by both room avatars and
// m.image messages.
type ImageInfo struct {
	Mimetype      string         `json:"mimetype,omitempty"`
	Height        int64          `json:"h,omitempty"`
	Width         int64          `json:"w,omitempty"`
	Size          int64          `json:"size,omitempty"`
	ThumbnailURL  string         `json:"thumbnail_url,omitempty"`
	ThumbnailInfo *ThumbnailInfo `json:"thumbnail_info,omitempty"`
}

// StickerContent is the event content for https://spec.matrix.org/latest/client-server-api/#msticker
type StickerContent struct {
	Body string    `json:"body"`
	Info ImageInfo `json:"info"`
	URL  string    `json:"url"`
}

func (*StickerContent) EventType() string { return MSticker }

// RedactionContent is the event content for https://spec.matrix.org/latest/client-server-api/#mroomredaction
//
// Room versions 1 through 10 carry the ID of the redacted event in the
// envelope-level redacts key; room version 11 moved it into the content.
type RedactionContent struct {
	Redacts spec.EventID `json:"redacts,omitempty"`
	Reason  string       `json:"reason,omitempty"`
}

func (*RedactionContent) EventType() string { return MRoomRedaction }

// PossiblyRedactedRedactionContent is used when it is not known whether the
// content has been redacted. Both fields are already optional on the wire;
// the distinct type states that redacts only survives redaction from room
// version 11 onwards and reason never does.
type PossiblyRedactedRedactionContent struct {
	Redacts spec.EventID `json:"redacts,omitempty"`
	Reason  string       `json:"reason,omitempty"`
}

func (*PossiblyRedactedRedactionContent) EventType() string { return MRoomRedaction }
