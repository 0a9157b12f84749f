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

package spec

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
)

// maxIDLength is the maximum length of a Matrix identifier in bytes,
// including the sigil and the domain where one is present.
const maxIDLength = 255

// Validation errors are sentinel values so that callers can branch on the
// failure class with errors.Is.
var (
	ErrEmptyIdentifier       = errors.New("identifier is empty")
	ErrMaximumLengthExceeded = errors.New("identifier exceeds the maximum of 255 bytes")
	ErrMissingSigil          = errors.New("identifier is missing the leading sigil")
	ErrMissingDelimiter      = errors.New("identifier is missing the ':' delimiter")
	ErrEmptyLocalpart        = errors.New("identifier has an empty localpart")
	ErrInvalidServerName     = errors.New("identifier has an invalid server name part")
)

// validateID checks the common grammar shared by all identifier classes: the
// identifier must be non-empty, must start with one of the given sigils and
// must not exceed the maximum length. It deliberately says nothing about the
// part after the sigil, since several identifier classes treat it as opaque.
func validateID(s string, sigils ...byte) error {
	if s == "" {
		return ErrEmptyIdentifier
	}
	if len(s) > maxIDLength {
		return ErrMaximumLengthExceeded
	}
	for _, sigil := range sigils {
		if s[0] == sigil {
			return nil
		}
	}
	return fmt.Errorf("%w (expected %q, got %q)", ErrMissingSigil, string(sigils), string(s[0]))
}

// validateDelimitedID checks the grammar for identifiers of the form
// "<sigil>localpart:server.name". The localpart must be non-empty and the
// server name must parse.
func validateDelimitedID(s string, sigils ...byte) error {
	if err := validateID(s, sigils...); err != nil {
		return err
	}
	idx := strings.IndexByte(s, ':')
	if idx < 0 {
		return ErrMissingDelimiter
	}
	if idx == 1 {
		return ErrEmptyLocalpart
	}
	if !isValidServerName(s[idx+1:]) {
		return ErrInvalidServerName
	}
	return nil
}

// isValidServerName reports whether the string is a valid server name: a
// hostname, an IPv4 address or a bracketed IPv6 address, optionally followed
// by a port.
func isValidServerName(s string) bool {
	if s == "" {
		return false
	}
	host := s
	// A bracketed IPv6 literal may contain colons, so strip the port only
	// after the closing bracket.
	if s[0] == '[' {
		end := strings.IndexByte(s, ']')
		if end < 0 {
			return false
		}
		if rest := s[end+1:]; rest != "" {
			if rest[0] != ':' || !isValidPort(rest[1:]) {
				return false
			}
		}
		return net.ParseIP(s[1:end]) != nil
	}
	if idx := strings.LastIndexByte(s, ':'); idx >= 0 {
		if !isValidPort(s[idx+1:]) {
			return false
		}
		host = s[:idx]
	}
	if host == "" {
		return false
	}
	for i := 0; i < len(host); i++ {
		c := host[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '.' || c == '-':
		default:
			return false
		}
	}
	return true
}

func isValidPort(s string) bool {
	port, err := strconv.Atoi(s)
	return err == nil && port > 0 && port <= 65535
}

// ValidateRoomID checks that the candidate is a valid room ID: the "!" sigil
// followed by an opaque string. Room IDs in newer room versions are not
// required to contain a server name, so no delimiter is required.
func ValidateRoomID(s string) error {
	return validateID(s, '!')
}

// ValidateRoomAlias checks that the candidate is a valid room alias of the
// form "#alias:server.name".
func ValidateRoomAlias(s string) error {
	return validateDelimitedID(s, '#')
}

// ValidateUserID checks that the candidate is a valid user ID of the form
// "@localpart:server.name".
func ValidateUserID(s string) error {
	return validateDelimitedID(s, '@')
}

// ValidateEventID checks that the candidate is a valid event ID: the "$"
// sigil followed by an opaque string. Event IDs from room versions 1 and 2
// contained a server name but all later versions are opaque hashes, so only
// the sigil is checked.
func ValidateEventID(s string) error {
	return validateID(s, '$')
}

// ValidateRoomIDOrAlias checks that the candidate is either a valid room ID
// or a valid room alias, dispatching on the leading sigil. When the sigil is
// neither "!" nor "#" the missing-sigil error is returned, so that a caller
// sees the alias-class error whenever the input at least looked like an
// alias.
func ValidateRoomIDOrAlias(s string) error {
	if s == "" {
		return ErrEmptyIdentifier
	}
	switch s[0] {
	case '#':
		return ValidateRoomAlias(s)
	case '!':
		return ValidateRoomID(s)
	default:
		return fmt.Errorf("%w (expected \"!\" or \"#\", got %q)", ErrMissingSigil, string(s[0]))
	}
}

// A RoomID identifies a room, e.g. "!abcdef:example.com".
type RoomID string

// NewRoomID validates the given string and returns it as a RoomID.
func NewRoomID(s string) (RoomID, error) {
	if err := ValidateRoomID(s); err != nil {
		return "", err
	}
	return RoomID(s), nil
}

// A RoomAlias is a human-friendly room name, e.g. "#matrix:example.com".
type RoomAlias string

// NewRoomAlias validates the given string and returns it as a RoomAlias.
func NewRoomAlias(s string) (RoomAlias, error) {
	if err := ValidateRoomAlias(s); err != nil {
		return "", err
	}
	return RoomAlias(s), nil
}

// A UserID identifies a user, e.g. "@alice:example.com".
type UserID string

// NewUserID validates the given string and returns it as a UserID.
func NewUserID(s string) (UserID, error) {
	if err := ValidateUserID(s); err != nil {
		return "", err
	}
	return UserID(s), nil
}

// Localpart returns the part of the user ID between the sigil and the
// delimiter, e.g. "alice" for "@alice:example.com".
func (u UserID) Localpart() string {
	s := string(u)
	if idx := strings.IndexByte(s, ':'); idx > 0 {
		return s[1:idx]
	}
	return ""
}

// Domain returns the server name part of the user ID.
func (u UserID) Domain() ServerName {
	s := string(u)
	if idx := strings.IndexByte(s, ':'); idx >= 0 {
		return ServerName(s[idx+1:])
	}
	return ""
}

// An EventID identifies an event, e.g. "$WLGTSEFSEF:example.com" for room
// versions 1 and 2, or "$Rqnc-F-dvnEYJTyHq_iKxU2bZ1CI92-kuZq3a5lr5Zg" from
// room version 3 onwards.
type EventID string

// NewEventID validates the given string and returns it as an EventID.
func NewEventID(s string) (EventID, error) {
	if err := ValidateEventID(s); err != nil {
		return "", err
	}
	return EventID(s), nil
}

// A ServerName is the host part of a Matrix identifier, e.g. "example.com"
// or "example.com:8448".
type ServerName string

// NewServerName validates the given string and returns it as a ServerName.
func NewServerName(s string) (ServerName, error) {
	if !isValidServerName(s) {
		return "", ErrInvalidServerName
	}
	return ServerName(s), nil
}
