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

package version

import (
	"fmt"
	"strconv"
)

// A RoomVersion is the protocol version that a room operates under. It
// decides, among other things, which fields of an event survive redaction.
type RoomVersion string

// Room versions in release order.
const (
	V1  RoomVersion = "1"
	V2  RoomVersion = "2"
	V3  RoomVersion = "3"
	V4  RoomVersion = "4"
	V5  RoomVersion = "5"
	V6  RoomVersion = "6"
	V7  RoomVersion = "7"
	V8  RoomVersion = "8"
	V9  RoomVersion = "9"
	V10 RoomVersion = "10"
	V11 RoomVersion = "11"
)

// RoomVersionDescription contains information about a room version.
type RoomVersionDescription struct {
	// Whether this implementation understands the room version well enough
	// to process events in rooms using it.
	Supported bool
	// Whether the room version is marked as stable or unstable in the
	// specification.
	Stable bool
}

var roomVersions = map[RoomVersion]RoomVersionDescription{
	V1:  {Supported: true, Stable: true},
	V2:  {Supported: true, Stable: true},
	V3:  {Supported: true, Stable: true},
	V4:  {Supported: true, Stable: true},
	V5:  {Supported: true, Stable: true},
	V6:  {Supported: true, Stable: true},
	V7:  {Supported: true, Stable: true},
	V8:  {Supported: true, Stable: true},
	V9:  {Supported: true, Stable: true},
	V10: {Supported: true, Stable: true},
	V11: {Supported: true, Stable: true},
}

// DefaultRoomVersion contains the room version that will, by default, be
// used to create new rooms.
func DefaultRoomVersion() RoomVersion {
	return V10
}

// RoomVersions returns a map of all known room versions.
func RoomVersions() map[RoomVersion]RoomVersionDescription {
	versions := make(map[RoomVersion]RoomVersionDescription, len(roomVersions))
	for v, desc := range roomVersions {
		versions[v] = desc
	}
	return versions
}

// SupportedRoomVersions returns a map of descriptions for room versions that
// are supported by this implementation.
func SupportedRoomVersions() map[RoomVersion]RoomVersionDescription {
	versions := map[RoomVersion]RoomVersionDescription{}
	for v, desc := range roomVersions {
		if desc.Supported {
			versions[v] = desc
		}
	}
	return versions
}

// Description returns information about a specific room version. An
// UnknownVersionError is returned if the version is not known.
func Description(v RoomVersion) (RoomVersionDescription, error) {
	if desc, ok := roomVersions[v]; ok {
		return desc, nil
	}
	return RoomVersionDescription{}, UnknownVersionError{v}
}

// SupportedDescription returns information about a specific room version. An
// UnknownVersionError is returned if the version is not known, or an
// UnsupportedVersionError is returned if the version is known but
// specifically marked as unsupported.
func SupportedDescription(v RoomVersion) (RoomVersionDescription, error) {
	desc, err := Description(v)
	if err != nil {
		return RoomVersionDescription{}, err
	}
	if !desc.Supported {
		return RoomVersionDescription{}, UnsupportedVersionError{v}
	}
	return desc, nil
}

// release returns the numeric release of the room version, with ok false for
// versions that are not plain release numbers (e.g. vendored experimental
// versions like "org.matrix.msc2176").
func (v RoomVersion) release() (int, bool) {
	n, err := strconv.Atoi(string(v))
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// Before reports whether the room version predates the given numbered
// release. Versions that are not plain release numbers are treated as newer
// than every numbered release, so that behaviour switched at a release
// boundary falls back to the most recent regime for unknown versions.
func (v RoomVersion) Before(release int) bool {
	n, ok := v.release()
	return ok && n < release
}

// AtLeast reports whether the room version is the given numbered release or
// a later one. The complement of Before.
func (v RoomVersion) AtLeast(release int) bool {
	return !v.Before(release)
}

// UnknownVersionError is caused when the room version is not known.
type UnknownVersionError struct {
	Version RoomVersion
}

func (e UnknownVersionError) Error() string {
	return fmt.Sprintf("room version '%s' is not known", e.Version)
}

// UnsupportedVersionError is caused when the room version is specifically
// marked as unsupported.
type UnsupportedVersionError struct {
	Version RoomVersion
}

func (e UnsupportedVersionError) Error() string {
	return fmt.Sprintf("room version '%s' is marked as unsupported", e.Version)
}
