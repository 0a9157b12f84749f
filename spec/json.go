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

import "time"

// RawJSON is a reimplementation of json.RawMessage that supports being used
// as a value type. The stdlib json.RawMessage needs a pointer receiver for
// correct round-tripping, which makes it awkward to embed in structs that are
// themselves marshalled by value.
type RawJSON []byte

// MarshalJSON implements the json.Marshaler interface using a value receiver.
// This means that structs with RawJSON fields can be marshalled correctly
// without needing to take the address of the field.
func (r RawJSON) MarshalJSON() ([]byte, error) {
	if r == nil {
		return []byte("null"), nil
	}
	return r, nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (r *RawJSON) UnmarshalJSON(data []byte) error {
	*r = append((*r)[:0], data...)
	return nil
}

// A Timestamp is a millisecond posix timestamp, the format used by
// origin_server_ts and friends on the wire.
type Timestamp uint64

// AsTimestamp turns a time.Time into a millisecond posix timestamp.
func AsTimestamp(t time.Time) Timestamp {
	return Timestamp(t.UnixNano() / int64(time.Millisecond))
}

// Time turns a millisecond posix timestamp into a UTC time.Time.
func (ts Timestamp) Time() time.Time {
	return time.Unix(int64(ts)/1000, (int64(ts)%1000)*int64(time.Millisecond)).UTC()
}
