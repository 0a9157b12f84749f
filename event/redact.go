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
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/Michael-Hollister/ruma/spec"
	"github.com/Michael-Hollister/ruma/version"
)

// A versionedKey is a content key that only survives redaction in a range of
// room version releases. from is the first release retaining the key (0 for
// "since the beginning"); until is the last one (0 for "still retained").
type versionedKey struct {
	key   string
	from  int
	until int
}

// A redactionPolicy lists the content keys of one event type that survive
// redaction. Event types with no entry fall into the default regime, which
// retains nothing. Keys are gjson paths, so nested retention is expressible.
type redactionPolicy struct {
	retain    []string
	versioned []versionedKey
}

// redactionPolicies is the complete retention table, keyed by event type.
// Redaction behaviour is this data plus the m.room.create special case in
// RedactJSON; there are deliberately no other call-site conditionals.
var redactionPolicies = map[string]redactionPolicy{
	MRoomMember: {
		retain: []string{"membership"},
		versioned: []versionedKey{
			{key: "join_authorised_via_users_server", from: 9},
			{key: "third_party_invite.signed", from: 11},
		},
	},
	MRoomJoinRules: {
		retain: []string{"join_rule"},
		versioned: []versionedKey{
			{key: "allow", from: 8},
		},
	},
	MRoomPowerLevels: {
		retain: []string{
			"ban", "events", "events_default", "kick", "redact",
			"state_default", "users", "users_default",
		},
		versioned: []versionedKey{
			{key: "invite", from: 11},
		},
	},
	MRoomHistoryVisibility: {
		retain: []string{"history_visibility"},
	},
	MRoomRedaction: {
		versioned: []versionedKey{
			{key: "redacts", from: 11},
		},
	},
	MRoomAliases: {
		// The aliases event lost its special meaning, and with it its
		// retained key, in room version 6.
		versioned: []versionedKey{
			{key: "aliases", until: 5},
		},
	},
	MRoomCreate: {
		// Pre-v11 regime only; from v11 the whole content is retained and
		// RedactJSON returns early.
		retain: []string{"creator"},
	},
}

// retainedKeys returns the content keys of the given event type that survive
// redaction under the given room version. The result is identical across
// calls for the same inputs.
func retainedKeys(eventType string, v version.RoomVersion) []string {
	policy, ok := redactionPolicies[eventType]
	if !ok {
		return nil
	}
	keys := append([]string{}, policy.retain...)
	for _, vk := range policy.versioned {
		if vk.from > 0 && v.Before(vk.from) {
			continue
		}
		if vk.until > 0 && v.AtLeast(vk.until+1) {
			continue
		}
		keys = append(keys, vk.key)
	}
	return keys
}

// RedactJSON reduces raw event content to its redacted form under the given
// room version. It is a pure function, total over any input: content that is
// not a JSON object redacts to the empty object, and room versions newer
// than any known release fall into the newest regime. Redacting
// already-redacted content yields the same result.
func RedactJSON(eventType string, content spec.RawJSON, v version.RoomVersion) spec.RawJSON {
	if !gjson.ParseBytes(content).IsObject() {
		return spec.RawJSON("{}")
	}
	if eventType == MRoomCreate && v.AtLeast(11) {
		// Room version 11 inverted the rule for m.room.create: the whole
		// content is retained, except creator, whose concept was removed
		// from the protocol in that version.
		redacted := make(spec.RawJSON, len(content))
		copy(redacted, content)
		redacted, _ = sjson.DeleteBytes(redacted, "creator")
		return redacted
	}
	redacted := []byte("{}")
	for _, key := range retainedKeys(eventType, v) {
		if res := gjson.GetBytes(content, key); res.Exists() {
			redacted, _ = sjson.SetRawBytes(redacted, key, []byte(res.Raw))
		}
	}
	return redacted
}
