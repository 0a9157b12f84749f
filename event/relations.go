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

// Known rel_type values.
const (
	RelReplace    = "m.replace"
	RelThread     = "m.thread"
	RelAnnotation = "m.annotation"
	RelReference  = "m.reference"
)

// RelatesTo describes how an event relates to another one, e.g. an edit, a
// thread reply or a reaction.
type RelatesTo struct {
	RelType string       `json:"rel_type,omitempty"`
	EventID spec.EventID `json:"event_id,omitempty"`
	// Key is the annotation, e.g. the emoji of an m.annotation reaction.
	Key string `json:"key,omitempty"`
	// IsFallingBack marks a thread reply that is also a rich reply for the
	// benefit of clients without thread support.
	IsFallingBack bool       `json:"is_falling_back,omitempty"`
	InReplyTo     *InReplyTo `json:"m.in_reply_to,omitempty"`
}

// InReplyTo is the rich-reply form of relating to an event.
type InReplyTo struct {
	EventID spec.EventID `json:"event_id"`
}

// BundledRelations are the aggregations of related child events that a
// server bundles into the unsigned metadata of a parent event on delivery.
type BundledRelations struct {
	// Replace is the most recent edit of the event, as a stripped event.
	Replace spec.RawJSON `json:"m.replace,omitempty"`
	// Thread summarises the thread rooted at the event.
	Thread *BundledThread `json:"m.thread,omitempty"`
	// Reference lists the events referencing the event.
	Reference spec.RawJSON `json:"m.reference,omitempty"`
}

// IsEmpty reports whether there are no bundled aggregations at all.
func (r *BundledRelations) IsEmpty() bool {
	return r == nil || (r.Replace == nil && r.Thread == nil && r.Reference == nil)
}

// BundledThread is the bundled summary of a thread.
type BundledThread struct {
	LatestEvent             spec.RawJSON `json:"latest_event,omitempty"`
	Count                   int64        `json:"count,omitempty"`
	CurrentUserParticipated bool         `json:"current_user_participated,omitempty"`
}
