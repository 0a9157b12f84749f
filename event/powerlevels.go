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

// PowerLevelsContent is the event content for https://spec.matrix.org/latest/client-server-api/#mroompower_levels
type PowerLevelsContent struct {
	Ban           int64                 `json:"ban"`
	Events        map[string]int64      `json:"events"`
	EventsDefault int64                 `json:"events_default"`
	Invite        int64                 `json:"invite"`
	Kick          int64                 `json:"kick"`
	Redact        int64                 `json:"redact"`
	StateDefault  int64                 `json:"state_default"`
	Users         map[spec.UserID]int64 `json:"users"`
	UsersDefault  int64                 `json:"users_default"`
	Notifications map[string]int64      `json:"notifications,omitempty"`
}

func (*PowerLevelsContent) EventType() string { return MRoomPowerLevels }

// Defaults sets the power levels to their default values as defined in the
// specification.
func (c *PowerLevelsContent) Defaults() {
	c.Ban = 50
	c.Invite = 0
	c.Kick = 50
	c.Redact = 50
	c.StateDefault = 50
	c.EventsDefault = 0
	c.UsersDefault = 0
	c.Events = map[string]int64{}
	c.Users = map[spec.UserID]int64{}
	c.Notifications = map[string]int64{"room": 50}
}

// UserLevel returns the power level of the given user, falling back to the
// default user level.
func (c *PowerLevelsContent) UserLevel(user spec.UserID) int64 {
	if level, ok := c.Users[user]; ok {
		return level
	}
	return c.UsersDefault
}

// EventLevel returns the power level needed to send the given event type,
// falling back to the state or event default as appropriate.
func (c *PowerLevelsContent) EventLevel(eventType string, isState bool) int64 {
	if level, ok := c.Events[eventType]; ok {
		return level
	}
	if isState {
		return c.StateDefault
	}
	return c.EventsDefault
}

// PossiblyRedactedPowerLevelsContent is used when it is not known whether the
// content has been redacted. Every level is optional, so an absent level can
// be told apart from an explicit zero.
type PossiblyRedactedPowerLevelsContent struct {
	Ban           *int64                `json:"ban,omitempty"`
	Events        map[string]int64      `json:"events,omitempty"`
	EventsDefault *int64                `json:"events_default,omitempty"`
	Invite        *int64                `json:"invite,omitempty"`
	Kick          *int64                `json:"kick,omitempty"`
	Redact        *int64                `json:"redact,omitempty"`
	StateDefault  *int64                `json:"state_default,omitempty"`
	Users         map[spec.UserID]int64 `json:"users,omitempty"`
	UsersDefault  *int64                `json:"users_default,omitempty"`
	Notifications map[string]int64      `json:"notifications,omitempty"`
}

func (*PossiblyRedactedPowerLevelsContent) EventType() string { return MRoomPowerLevels }

// InitialPowerLevelsContent returns the initial values for m.room.power_levels
// on room creation if they have not been specified.
func InitialPowerLevelsContent(roomCreator spec.UserID) (c PowerLevelsContent) {
	c.Defaults()
	c.Events = map[string]int64{
		MRoomName:              50,
		MRoomPowerLevels:       100,
		MRoomHistoryVisibility: 100,
		MRoomCanonicalAlias:    50,
		MRoomAvatar:            50,
		MRoomTombstone:         100,
		"m.room.encryption":    100,
		"m.room.server_acl":    100,
	}
	c.Users = map[spec.UserID]int64{roomCreator: 100}
	return c
}
