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

// ThirdPartyInviteContent is the event content for https://spec.matrix.org/latest/client-server-api/#mroomthird_party_invite
//
// An invitation to a room issued to a third party identifier rather than a
// Matrix user ID. It acts as an m.room.member invite event where there is no
// target user_id to invite: it carries a token and a public key, and any
// user who can present a signature of the token by the matching private key
// may use the invitation to join the target room.
type ThirdPartyInviteContent struct {
	// DisplayName is a user-readable string representing the invited user.
	DisplayName string `json:"display_name"`
	// KeyValidityURL can be fetched to check whether the key was revoked.
	KeyValidityURL string `json:"key_validity_url"`
	// PublicKey is the base64-encoded Ed25519 key the token must be signed
	// with.
	PublicKey string `json:"public_key"`
	// PublicKeys lists further keys the token may be signed with.
	PublicKeys []PublicKey `json:"public_keys,omitempty"`

	// MSC3917 (cryptographically constrained room membership) fields.
	SenderKey     string                            `json:"org.matrix.msc3917.v1.sender_key,omitempty"`
	ParentEventID spec.EventID                      `json:"org.matrix.msc3917.v1.parent_event_id,omitempty"`
	Signatures    map[spec.UserID]map[string]string `json:"org.matrix.msc3917.v1.signatures,omitempty"`
}

func (*ThirdPartyInviteContent) EventType() string { return MRoomThirdPartyInvite }

// PublicKey is one key acceptable for signing a third party invite token.
type PublicKey struct {
	// KeyValidityURL can be fetched to check whether the key was revoked.
	// The URL must return a JSON object containing a boolean property named
	// "valid". If absent the key is considered valid indefinitely.
	KeyValidityURL string `json:"key_validity_url,omitempty"`
	// PublicKey is a base64-encoded Ed25519 key.
	PublicKey string `json:"public_key"`
}
