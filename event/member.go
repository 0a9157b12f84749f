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

// Membership states for m.room.member events.
const (
	MembershipInvite = "invite"
	MembershipJoin   = "join"
	MembershipLeave  = "leave"
	MembershipBan    = "ban"
	MembershipKnock  = "knock"
)

// MemberContent is the event content for https://spec.matrix.org/latest/client-server-api/#mroommember
type MemberContent struct {
	Membership  string `json:"membership"`
	DisplayName string `json:"displayname,omitempty"`
	AvatarURL   string `json:"avatar_url,omitempty"`
	Reason      string `json:"reason,omitempty"`
	IsDirect    bool   `json:"is_direct,omitempty"`
	// AuthorisedVia is the server that authorised the join of a restricted
	// room, from room version 8 onwards.
	AuthorisedVia    spec.UserID             `json:"join_authorised_via_users_server,omitempty"`
	ThirdPartyInvite *MemberThirdPartyInvite `json:"third_party_invite,omitempty"`
}

func (*MemberContent) EventType() string { return MRoomMember }

// MemberThirdPartyInvite ties an m.room.member invite back to the
// m.room.third_party_invite event it stems from.
type MemberThirdPartyInvite struct {
	DisplayName string `json:"display_name"`
	// Signed is the block signed by the identity server; its exact shape is
	// checked by the signature verifier, not here.
	Signed spec.RawJSON `json:"signed"`
}

// JoinRulesContent is the event content for https://spec.matrix.org/latest/client-server-api/#mroomjoin_rules
type JoinRulesContent struct {
	JoinRule string `json:"join_rule"`
	// Allow lists the conditions under which a user can join a restricted
	// room, from room version 8 onwards.
	Allow []JoinRuleAllow `json:"allow,omitempty"`
}

func (*JoinRulesContent) EventType() string { return MRoomJoinRules }

// JoinRuleAllow is one allow condition of a restricted join rule.
type JoinRuleAllow struct {
	Type   string      `json:"type"`
	RoomID spec.RoomID `json:"room_id,omitempty"`
}

// PossiblyRedactedMemberContent is used when it is not known whether the
// content has been redacted. The otherwise required membership field is
// optional here; which of the other fields can still be present depends on
// the room version the content was redacted under.
type PossiblyRedactedMemberContent struct {
	Membership       *string                 `json:"membership,omitempty"`
	DisplayName      string                  `json:"displayname,omitempty"`
	AvatarURL        string                  `json:"avatar_url,omitempty"`
	Reason           string                  `json:"reason,omitempty"`
	IsDirect         bool                    `json:"is_direct,omitempty"`
	AuthorisedVia    spec.UserID             `json:"join_authorised_via_users_server,omitempty"`
	ThirdPartyInvite *MemberThirdPartyInvite `json:"third_party_invite,omitempty"`
}

func (*PossiblyRedactedMemberContent) EventType() string { return MRoomMember }

// PossiblyRedactedJoinRulesContent is used when it is not known whether the
// content has been redacted. The otherwise required join rule is optional
// here.
type PossiblyRedactedJoinRulesContent struct {
	JoinRule *string         `json:"join_rule,omitempty"`
	Allow    []JoinRuleAllow `json:"allow,omitempty"`
}

func (*PossiblyRedactedJoinRulesContent) EventType() string { return MRoomJoinRules }
