package event

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/Michael-Hollister/ruma/spec"
	"github.com/Michael-Hollister/ruma/version"
)

func TestRoomCreateSerialization(t *testing.T) {
	tsts := []struct {
		Name    string
		Content RoomCreateContent
		Want    string
	}{
		{
			"creatorAndNoFederation",
			RoomCreateContent{Creator: "@carl:example.com", Federate: false, RoomVersion: version.V4},
			`{"creator":"@carl:example.com","m.federate":false,"room_version":"4"}`,
		},
		{
			"federateDefaultOmitted",
			RoomCreateContent{Creator: "@carl:example.com", Federate: true, RoomVersion: version.V4},
			`{"creator":"@carl:example.com","room_version":"4"}`,
		},
		{
			"space",
			RoomCreateContent{Creator: "@carl:example.com", Federate: false, RoomVersion: version.V4, RoomType: RoomTypeSpace},
			`{"creator":"@carl:example.com","m.federate":false,"room_version":"4","type":"m.space"}`,
		},
		{
			"v11Default",
			NewRoomCreateContentV11(),
			`{"room_version":"11"}`,
		},
		{
			"predecessor",
			RoomCreateContent{
				Federate:    true,
				RoomVersion: version.V11,
				Predecessor: &PreviousRoom{RoomID: "!old:example.com", EventID: "$last"},
			},
			`{"room_version":"11","predecessor":{"room_id":"!old:example.com","event_id":"$last"}}`,
		},
	}
	for _, tst := range tsts {
		t.Run(tst.Name, func(t *testing.T) {
			raw, err := json.Marshal(tst.Content)
			require.NoError(t, err)
			require.JSONEq(t, tst.Want, string(raw))
		})
	}
}

func TestRoomCreateDeserialization(t *testing.T) {
	tsts := []struct {
		Name string
		JSON string
		Want RoomCreateContent
	}{
		{
			"explicit",
			`{"creator":"@carl:example.com","m.federate":true,"room_version":"4"}`,
			RoomCreateContent{Creator: "@carl:example.com", Federate: true, RoomVersion: version.V4},
		},
		{
			"defaultsApplied",
			`{"creator":"@carl:example.com"}`,
			RoomCreateContent{Creator: "@carl:example.com", Federate: true, RoomVersion: version.V1},
		},
		{
			"federateOff",
			`{"creator":"@carl:example.com","m.federate":false}`,
			RoomCreateContent{Creator: "@carl:example.com", Federate: false, RoomVersion: version.V1},
		},
		{
			"space",
			`{"creator":"@carl:example.com","room_version":"4","type":"m.space"}`,
			RoomCreateContent{Creator: "@carl:example.com", Federate: true, RoomVersion: version.V4, RoomType: RoomTypeSpace},
		},
	}
	for _, tst := range tsts {
		t.Run(tst.Name, func(t *testing.T) {
			var content RoomCreateContent
			require.NoError(t, json.Unmarshal([]byte(tst.JSON), &content))
			if diff := cmp.Diff(tst.Want, content); diff != "" {
				t.Errorf("decoded content: +got -want:\n%s", diff)
			}
		})
	}
}

func TestRoomCreateRedact(t *testing.T) {
	content := RoomCreateContent{
		Creator:     "@carl:example.com",
		Federate:    false,
		RoomVersion: version.V4,
		Predecessor: &PreviousRoom{RoomID: "!old:example.com", EventID: "$last"},
		RoomType:    RoomTypeSpace,
	}

	// Pre-v11: only the creator survives, on an otherwise default shape.
	redacted := content.Redact(version.V4)
	want := RoomCreateContent{Creator: "@carl:example.com", Federate: true, RoomVersion: version.V1}
	if diff := cmp.Diff(want, redacted); diff != "" {
		t.Errorf("pre-v11 redaction: +got -want:\n%s", diff)
	}

	// v11+: the creator is dropped, everything else survives.
	redacted = content.Redact(version.V11)
	want = content
	want.Creator = ""
	if diff := cmp.Diff(want, redacted); diff != "" {
		t.Errorf("v11 redaction: +got -want:\n%s", diff)
	}

	// Redaction is idempotent under a fixed version.
	for _, v := range []version.RoomVersion{version.V4, version.V11} {
		once := content.Redact(v)
		twice := once.Redact(v)
		if diff := cmp.Diff(once, twice); diff != "" {
			t.Errorf("redaction not idempotent under version %s: +got -want:\n%s", v, diff)
		}
	}
}

func TestMSC3917FieldsAreFeatureGated(t *testing.T) {
	in := spec.RawJSON(`{
		"creator": "@carl:example.com",
		"room_version": "4",
		"org.matrix.msc3917.v1.room_root_key": "/ZK6paR+wBkKcazPx2xijn/0g+m2KCRqdCUZ6agzaaE",
		"org.matrix.msc3917.v1.creator_key": "D67j2Q4RixFBAikBWXb7NjokkRgTDVyeHyEHjl8Ib9"
	}`)

	// The default decoder does not have msc3917 enabled.
	content, err := ParseStateContent(MRoomCreate, in)
	require.NoError(t, err)
	create := content.(*RoomCreateContent)
	require.Empty(t, create.RoomRootKey)
	require.Empty(t, create.CreatorKey)

	enabled := Decoder{Features: FeatureSet{MSCs: []string{"msc1767", "msc3917"}}}
	content, err = enabled.ParseStateContent(MRoomCreate, in)
	require.NoError(t, err)
	create = content.(*RoomCreateContent)
	require.Equal(t, "/ZK6paR+wBkKcazPx2xijn/0g+m2KCRqdCUZ6agzaaE", create.RoomRootKey)
	require.Equal(t, "D67j2Q4RixFBAikBWXb7NjokkRgTDVyeHyEHjl8Ib9", create.CreatorKey)
}
