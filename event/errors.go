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

import "fmt"

// A DiscriminatorError is returned when the payload is not a JSON object, or
// when the field used to select a concrete content type is missing or not a
// string. The event is undecodable; there is no fallback for this case.
type DiscriminatorError struct {
	Field  string
	Reason string
}

func (e DiscriminatorError) Error() string {
	return fmt.Sprintf("invalid %q discriminator: %s", e.Field, e.Reason)
}

// A ShapeError is returned when the discriminator was recognised but the
// remaining fields fail the structural requirements of the selected concrete
// type. The underlying unmarshalling error is kept for context.
type ShapeError struct {
	EventType string
	Err       error
}

func (e ShapeError) Error() string {
	return fmt.Sprintf("content does not match the shape of %q: %s", e.EventType, e.Err)
}

func (e ShapeError) Unwrap() error { return e.Err }
