package event

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Michael-Hollister/ruma/spec"
	"github.com/Michael-Hollister/ruma/version"
)

func TestRedactJSON(t *testing.T) {
	tsts := []struct {
		Name      string
		EventType string
		Version   version.RoomVersion
		Content   string
		Want      string
	}{
		{
			"messageDropsEverything",
			MRoomMessage, version.V10,
			`{"msgtype":"m.text","body":"secret"}`,
			`{}`,
		},
		{
			"unknownTypeDropsEverything",
			"com.example.custom", version.V10,
			`{"anything":"goes"}`,
			`{}`,
		},
		{
			"memberKeepsMembership",
			MRoomMember, version.V1,
			`{"membership":"join","displayname":"Carl","avatar_url":"mxc://x"}`,
			`{"membership":"join"}`,
		},
		{
			"memberAuthorisedViaBeforeV9",
			MRoomMember, version.V8,
			`{"membership":"join","join_authorised_via_users_server":"@bot:example.com"}`,
			`{"membership":"join"}`,
		},
		{
			"memberAuthorisedViaFromV9",
			MRoomMember, version.V9,
			`{"membership":"join","join_authorised_via_users_server":"@bot:example.com"}`,
			`{"membership":"join","join_authorised_via_users_server":"@bot:example.com"}`,
		},
		{
			"memberThirdPartySignedFromV11",
			MRoomMember, version.V11,
			`{"membership":"invite","third_party_invite":{"display_name":"alice","signed":{"token":"abc"}}}`,
			`{"membership":"invite","third_party_invite":{"signed":{"token":"abc"}}}`,
		},
		{
			"joinRulesAllowBeforeV8",
			MRoomJoinRules, version.V7,
			`{"join_rule":"restricted","allow":[{"type":"m.room_membership","room_id":"!a:b"}]}`,
			`{"join_rule":"restricted"}`,
		},
		{
			"joinRulesAllowFromV8",
			MRoomJoinRules, version.V8,
			`{"join_rule":"restricted","allow":[{"type":"m.room_membership","room_id":"!a:b"}]}`,
			`{"join_rule":"restricted","allow":[{"type":"m.room_membership","room_id":"!a:b"}]}`,
		},
		{
			"powerLevelsInviteBeforeV11",
			MRoomPowerLevels, version.V10,
			`{"ban":50,"invite":25,"notifications":{"room":50},"users_default":0}`,
			`{"ban":50,"users_default":0}`,
		},
		{
			"powerLevelsInviteFromV11",
			MRoomPowerLevels, version.V11,
			`{"ban":50,"invite":25,"notifications":{"room":50},"users_default":0}`,
			`{"ban":50,"invite":25,"users_default":0}`,
		},
		{
			"redactionRedactsBeforeV11",
			MRoomRedaction, version.V10,
			`{"redacts":"$abc","reason":"spam"}`,
			`{}`,
		},
		{
			"redactionRedactsFromV11",
			MRoomRedaction, version.V11,
			`{"redacts":"$abc","reason":"spam"}`,
			`{"redacts":"$abc"}`,
		},
		{
			"aliasesUntilV5",
			MRoomAliases, version.V5,
			`{"aliases":["#a:b"]}`,
			`{"aliases":["#a:b"]}`,
		},
		{
			"aliasesDroppedFromV6",
			MRoomAliases, version.V6,
			`{"aliases":["#a:b"]}`,
			`{}`,
		},
		{
			"historyVisibility",
			MRoomHistoryVisibility, version.V1,
			`{"history_visibility":"shared","extra":true}`,
			`{"history_visibility":"shared"}`,
		},
		{
			"createBeforeV11",
			MRoomCreate, version.V4,
			`{"creator":"@carl:example.com","m.federate":false,"room_version":"4"}`,
			`{"creator":"@carl:example.com"}`,
		},
		{
			"createFromV11",
			MRoomCreate, version.V11,
			`{"creator":"@carl:example.com","room_version":"11","type":"m.space"}`,
			`{"room_version":"11","type":"m.space"}`,
		},
		{
			"unknownVersionUsesNewestRegime",
			MRoomRedaction, version.RoomVersion("org.example.vnext"),
			`{"redacts":"$abc","reason":"spam"}`,
			`{"redacts":"$abc"}`,
		},
		{
			"nonObjectContent",
			MRoomMessage, version.V10,
			`"not an object"`,
			`{}`,
		},
	}
	for _, tst := range tsts {
		t.Run(tst.Name, func(t *testing.T) {
			got := RedactJSON(tst.EventType, spec.RawJSON(tst.Content), tst.Version)
			require.JSONEq(t, tst.Want, string(got))

			// The same inputs must always produce the same retention, and
			// redacting redacted content must change nothing.
			again := RedactJSON(tst.EventType, spec.RawJSON(tst.Content), tst.Version)
			require.JSONEq(t, string(got), string(again))
			twice := RedactJSON(tst.EventType, got, tst.Version)
			require.JSONEq(t, string(got), string(twice))
		})
	}
}

func TestTombstoneRedact(t *testing.T) {
	content := TombstoneContent{Body: "upgraded", ReplacementRoom: "!new:example.com"}
	redacted := content.Redact(version.V10)
	require.Equal(t, RedactedTombstoneContent{}, redacted)

	// The tombstone's retention does not vary by version.
	require.Equal(t, redacted, content.Redact(version.V11))
}

// The possibly-redacted shapes must decode both the full and the redacted
// form of the content, with every field optional.
func TestPossiblyRedactedShapes(t *testing.T) {
	var tombstone PossiblyRedactedTombstoneContent
	require.NoError(t, json.Unmarshal([]byte(`{}`), &tombstone))
	require.Nil(t, tombstone.Body)
	require.Nil(t, tombstone.ReplacementRoom)

	require.NoError(t, json.Unmarshal([]byte(`{"body":"upgraded","replacement_room":"!new:example.com"}`), &tombstone))
	require.Equal(t, "upgraded", *tombstone.Body)
	require.Equal(t, spec.RoomID("!new:example.com"), *tombstone.ReplacementRoom)

	var member PossiblyRedactedMemberContent
	require.NoError(t, json.Unmarshal([]byte(`{"membership":"join"}`), &member))
	require.Equal(t, MembershipJoin, *member.Membership)
	require.NoError(t, json.Unmarshal([]byte(`{}`), &member))

	var joinRules PossiblyRedactedJoinRulesContent
	require.NoError(t, json.Unmarshal([]byte(`{"join_rule":"restricted","allow":[{"type":"m.room_membership","room_id":"!a:b"}]}`), &joinRules))
	require.Equal(t, "restricted", *joinRules.JoinRule)
	require.Len(t, joinRules.Allow, 1)

	// An absent level can be told apart from an explicit zero.
	var powerLevels PossiblyRedactedPowerLevelsContent
	require.NoError(t, json.Unmarshal([]byte(`{"ban":50,"invite":0}`), &powerLevels))
	require.EqualValues(t, 50, *powerLevels.Ban)
	require.EqualValues(t, 0, *powerLevels.Invite)
	require.Nil(t, powerLevels.Kick)

	var redaction PossiblyRedactedRedactionContent
	require.NoError(t, json.Unmarshal([]byte(`{"redacts":"$abc"}`), &redaction))
	require.Equal(t, spec.EventID("$abc"), redaction.Redacts)
	require.Empty(t, redaction.Reason)
}

func TestEventRedactDropsUnsigned(t *testing.T) {
	ev := Event{
		Content:  spec.RawJSON(`{"msgtype":"m.text","body":"secret"}`),
		EventID:  "$abc",
		Sender:   "@carl:example.com",
		Type:     MRoomMessage,
		Unsigned: spec.RawJSON(`{"age":1234}`),
	}
	redacted := ev.Redact(version.V10)
	require.JSONEq(t, `{}`, string(redacted.Content))
	require.Nil(t, redacted.Unsigned)
	require.Equal(t, ev.EventID, redacted.EventID)

	// The input event is left untouched.
	require.JSONEq(t, `{"msgtype":"m.text","body":"secret"}`, string(ev.Content))
	require.NotNil(t, ev.Unsigned)
}
