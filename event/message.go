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

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/Michael-Hollister/ruma/spec"
)

// Known msgtype values for m.room.message events.
const (
	MText                   = "m.text"
	MEmote                  = "m.emote"
	MNotice                 = "m.notice"
	MImage                  = "m.image"
	MFile                   = "m.file"
	MAudio                  = "m.audio"
	MVideo                  = "m.video"
	MLocation               = "m.location"
	MServerNotice           = "m.server_notice"
	MKeyVerificationRequest = "m.key.verification.request"
)

// MessageContent is implemented by the concrete per-msgtype shapes of
// m.room.message content. The msgtype discriminator is reported by MsgType
// and is not carried as a struct field; MarshalContent injects it on encode.
type MessageContent interface {
	Content
	MsgType() string
}

// messageTypes is the msgtype dispatch table. msgtypes not listed here
// decode into *CustomMessageContent.
var messageTypes = map[string]func() MessageContent{
	MText:                   func() MessageContent { return &TextMessageContent{} },
	MEmote:                  func() MessageContent { return &EmoteMessageContent{} },
	MNotice:                 func() MessageContent { return &NoticeMessageContent{} },
	MImage:                  func() MessageContent { return &ImageMessageContent{} },
	MFile:                   func() MessageContent { return &FileMessageContent{} },
	MAudio:                  func() MessageContent { return &AudioMessageContent{} },
	MVideo:                  func() MessageContent { return &VideoMessageContent{} },
	MLocation:               func() MessageContent { return &LocationMessageContent{} },
	MServerNotice:           func() MessageContent { return &ServerNoticeMessageContent{} },
	MKeyVerificationRequest: func() MessageContent { return &VerificationRequestMessageContent{} },
}

// RoomMessageContent is the content of an m.room.message event: one of the
// concrete message shapes, plus the optional relationship to another event.
type RoomMessageContent struct {
	Message   MessageContent
	RelatesTo *RelatesTo
}

// EventType implements Content.
func (c *RoomMessageContent) EventType() string { return MRoomMessage }

// MarshalJSON encodes the message shape and folds the relationship back in.
// The custom fallback already carries the original m.relates_to object
// verbatim, so re-injecting the typed form there would drop any subfields the
// typed shape does not know about.
func (c RoomMessageContent) MarshalJSON() ([]byte, error) {
	raw, err := MarshalContent(c.Message)
	if err != nil {
		return nil, err
	}
	if _, custom := c.Message.(*CustomMessageContent); custom {
		return raw, nil
	}
	if c.RelatesTo != nil {
		return sjson.SetBytes(raw, `m\.relates_to`, c.RelatesTo)
	}
	return raw, nil
}

// ParseMessageContent decodes m.room.message content. The msgtype field is
// peeked from the raw bytes first, then the same bytes are decoded again
// into the shape it selects.
func (d Decoder) ParseMessageContent(content spec.RawJSON) (*RoomMessageContent, error) {
	parsed := gjson.ParseBytes(content)
	if !parsed.IsObject() {
		return nil, DiscriminatorError{Field: "msgtype", Reason: "payload is not a JSON object"}
	}
	msgtype := parsed.Get("msgtype")
	if !msgtype.Exists() {
		return nil, DiscriminatorError{Field: "msgtype", Reason: "field is missing"}
	}
	if msgtype.Type != gjson.String {
		return nil, DiscriminatorError{Field: "msgtype", Reason: "field is not a string"}
	}

	var relates struct {
		RelatesTo *RelatesTo `json:"m.relates_to"`
	}
	if err := json.Unmarshal(content, &relates); err != nil {
		return nil, ShapeError{EventType: MRoomMessage, Err: err}
	}

	var msg MessageContent
	if factory, ok := messageTypes[msgtype.Str]; ok {
		msg = factory()
		if err := json.Unmarshal(d.filterUnstable(content), msg); err != nil {
			return nil, ShapeError{EventType: msgtype.Str, Err: err}
		}
	} else {
		raw := make(spec.RawJSON, len(content))
		copy(raw, content)
		msg = &CustomMessageContent{MsgTypeValue: msgtype.Str, Raw: raw}
	}
	return &RoomMessageContent{Message: msg, RelatesTo: relates.RelatesTo}, nil
}

// TextMessageContent is an m.text message, optionally with an HTML body.
type TextMessageContent struct {
	Body          string `json:"body"`
	Format        string `json:"format,omitempty"`
	FormattedBody string `json:"formatted_body,omitempty"`
}

func (*TextMessageContent) EventType() string { return MRoomMessage }
func (*TextMessageContent) MsgType() string   { return MText }

// EmoteMessageContent is an m.emote message, an action performed by the
// sender, e.g. the result of a "/me" command.
type EmoteMessageContent struct {
	Body          string `json:"body"`
	Format        string `json:"format,omitempty"`
	FormattedBody string `json:"formatted_body,omitempty"`
}

func (*EmoteMessageContent) EventType() string { return MRoomMessage }
func (*EmoteMessageContent) MsgType() string   { return MEmote }

// NoticeMessageContent is an m.notice message, an automated response that
// clients should render without notifying.
type NoticeMessageContent struct {
	Body          string `json:"body"`
	Format        string `json:"format,omitempty"`
	FormattedBody string `json:"formatted_body,omitempty"`
}

func (*NoticeMessageContent) EventType() string { return MRoomMessage }
func (*NoticeMessageContent) MsgType() string   { return MNotice }

// FileContent is the extensible-event file payload. On the wire it appears
// under the stable "m.file" key or the unstable "org.matrix.msc1767.file"
// key; decoding resolves the two into this one field.
type FileContent struct {
	URL      string `json:"url"`
	Name     string `json:"name,omitempty"`
	Mimetype string `json:"mimetype,omitempty"`
	Size     int64  `json:"size,omitempty"`
}

// ImageDimensions is the extensible-event image payload, sent under "m.image"
// or its unstable name.
type ImageDimensions struct {
	Height int64 `json:"height,omitempty"`
	Width  int64 `json:"width,omitempty"`
}

// ThumbnailContent is one entry of the extensible-event "m.thumbnail" array.
type ThumbnailContent struct {
	URL      string `json:"url"`
	Mimetype string `json:"mimetype,omitempty"`
	Size     int64  `json:"size,omitempty"`
	Height   int64  `json:"height,omitempty"`
	Width    int64  `json:"width,omitempty"`
}

// ImageMessageContent is an m.image message.
type ImageMessageContent struct {
	Body string     `json:"body"`
	URL  string     `json:"url,omitempty"`
	Info *ImageInfo `json:"info,omitempty"`

	// Extensible-event representations of the image.
	File      *FileContent       `json:"m.file,omitempty"`
	Image     *ImageDimensions   `json:"m.image,omitempty"`
	Thumbnail []ThumbnailContent `json:"m.thumbnail,omitempty"`
}

func (*ImageMessageContent) EventType() string { return MRoomMessage }
func (*ImageMessageContent) MsgType() string   { return MImage }

// imageMessageDeHelper declares one slot per wire name for the aliased
// extensible-event fields of an image message.
type imageMessageDeHelper struct {
	Body string     `json:"body"`
	URL  string     `json:"url"`
	Info *ImageInfo `json:"info"`

	FileStable        *FileContent       `json:"m.file"`
	FileUnstable      *FileContent       `json:"org.matrix.msc1767.file"`
	ImageStable       *ImageDimensions   `json:"m.image"`
	ImageUnstable     *ImageDimensions   `json:"org.matrix.msc1767.image"`
	ThumbnailStable   []ThumbnailContent `json:"m.thumbnail"`
	ThumbnailUnstable []ThumbnailContent `json:"org.matrix.msc1767.thumbnail"`
}

// UnmarshalJSON decodes the wire form, resolving stable/unstable aliases.
func (c *ImageMessageContent) UnmarshalJSON(data []byte) error {
	var helper imageMessageDeHelper
	if err := json.Unmarshal(data, &helper); err != nil {
		return err
	}
	*c = ImageMessageContent{
		Body:      helper.Body,
		URL:       helper.URL,
		Info:      helper.Info,
		File:      resolveAlias(helper.FileStable, helper.FileUnstable),
		Image:     resolveAlias(helper.ImageStable, helper.ImageUnstable),
		Thumbnail: resolveAliasSlice(helper.ThumbnailStable, helper.ThumbnailUnstable),
	}
	return nil
}

// FileMessageContent is an m.file message.
type FileMessageContent struct {
	Body     string    `json:"body"`
	Filename string    `json:"filename,omitempty"`
	URL      string    `json:"url,omitempty"`
	Info     *FileInfo `json:"info,omitempty"`

	// Extensible-event representation of the file.
	File *FileContent `json:"m.file,omitempty"`
}

func (*FileMessageContent) EventType() string { return MRoomMessage }
func (*FileMessageContent) MsgType() string   { return MFile }

type fileMessageDeHelper struct {
	Body     string    `json:"body"`
	Filename string    `json:"filename"`
	URL      string    `json:"url"`
	Info     *FileInfo `json:"info"`

	FileStable   *FileContent `json:"m.file"`
	FileUnstable *FileContent `json:"org.matrix.msc1767.file"`
}

// UnmarshalJSON decodes the wire form, resolving stable/unstable aliases.
func (c *FileMessageContent) UnmarshalJSON(data []byte) error {
	var helper fileMessageDeHelper
	if err := json.Unmarshal(data, &helper); err != nil {
		return err
	}
	*c = FileMessageContent{
		Body:     helper.Body,
		Filename: helper.Filename,
		URL:      helper.URL,
		Info:     helper.Info,
		File:     resolveAlias(helper.FileStable, helper.FileUnstable),
	}
	return nil
}

// AudioMessageContent is an m.audio message.
type AudioMessageContent struct {
	Body string     `json:"body"`
	URL  string     `json:"url,omitempty"`
	Info *AudioInfo `json:"info,omitempty"`
}

func (*AudioMessageContent) EventType() string { return MRoomMessage }
func (*AudioMessageContent) MsgType() string   { return MAudio }

// VideoMessageContent is an m.video message.
type VideoMessageContent struct {
	Body string     `json:"body"`
	URL  string     `json:"url,omitempty"`
	Info *VideoInfo `json:"info,omitempty"`
}

func (*VideoMessageContent) EventType() string { return MRoomMessage }
func (*VideoMessageContent) MsgType() string   { return MVideo }

// LocationMessageContent is an m.location message.
type LocationMessageContent struct {
	Body   string        `json:"body"`
	GeoURI string        `json:"geo_uri"`
	Info   *LocationInfo `json:"info,omitempty"`
}

func (*LocationMessageContent) EventType() string { return MRoomMessage }
func (*LocationMessageContent) MsgType() string   { return MLocation }

// ServerNoticeMessageContent is an m.server_notice message sent by a server
// through the server notices room.
type ServerNoticeMessageContent struct {
	Body             string `json:"body"`
	ServerNoticeType string `json:"server_notice_type"`
	AdminContact     string `json:"admin_contact,omitempty"`
	LimitType        string `json:"limit_type,omitempty"`
}

func (*ServerNoticeMessageContent) EventType() string { return MRoomMessage }
func (*ServerNoticeMessageContent) MsgType() string   { return MServerNotice }

// VerificationRequestMessageContent is an m.key.verification.request message
// starting an in-room key verification.
type VerificationRequestMessageContent struct {
	Body       string      `json:"body"`
	FromDevice string      `json:"from_device"`
	Methods    []string    `json:"methods"`
	To         spec.UserID `json:"to"`
}

func (*VerificationRequestMessageContent) EventType() string { return MRoomMessage }
func (*VerificationRequestMessageContent) MsgType() string   { return MKeyVerificationRequest }

// FileInfo is metadata about the file referred to by an m.file message.
type FileInfo struct {
	Mimetype      string         `json:"mimetype,omitempty"`
	Size          int64          `json:"size,omitempty"`
	ThumbnailURL  string         `json:"thumbnail_url,omitempty"`
	ThumbnailInfo *ThumbnailInfo `json:"thumbnail_info,omitempty"`
}

// AudioInfo is metadata about the clip referred to by an m.audio message.
type AudioInfo struct {
	DurationMS int64  `json:"duration,omitempty"`
	Mimetype   string `json:"mimetype,omitempty"`
	Size       int64  `json:"size,omitempty"`
}

// VideoInfo is metadata about the clip referred to by an m.video message.
type VideoInfo struct {
	DurationMS    int64          `json:"duration,omitempty"`
	Height        int64          `json:"h,omitempty"`
	Width         int64          `json:"w,omitempty"`
	Mimetype      string         `json:"mimetype,omitempty"`
	Size          int64          `json:"size,omitempty"`
	ThumbnailURL  string         `json:"thumbnail_url,omitempty"`
	ThumbnailInfo *ThumbnailInfo `json:"thumbnail_info,omitempty"`
}

// LocationInfo is a thumbnail for an m.location message.
type LocationInfo struct {
	ThumbnailURL  string         `json:"thumbnail_url,omitempty"`
	ThumbnailInfo *ThumbnailInfo `json:"thumbnail_info,omitempty"`
}

// ThumbnailInfo is metadata about a thumbnail image.
type ThumbnailInfo struct {
	Height   int64  `json:"h,omitempty"`
	Width    int64  `json:"w,omitempty"`
	Mimetype string `json:"mimetype,omitempty"`
	Size     int64  `json:"size,omitempty"`
}
