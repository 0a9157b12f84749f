package event

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/Michael-Hollister/ruma/spec"
)

func TestParseStateContentDispatch(t *testing.T) {
	tsts := []struct {
		Name      string
		EventType string
		JSON      string
		Want      Content
	}{
		{
			"name",
			MRoomName,
			`{"name":"The Channel"}`,
			&NameContent{Name: "The Channel"},
		},
		{
			"topic",
			MRoomTopic,
			`{"topic":"All things protocol"}`,
			&TopicContent{Topic: "All things protocol"},
		},
		{
			"canonicalAlias",
			MRoomCanonicalAlias,
			`{"alias":"#chan:example.com","alt_aliases":["#chan:other.example"]}`,
			&CanonicalAliasContent{Alias: "#chan:example.com", AltAliases: []spec.RoomAlias{"#chan:other.example"}},
		},
		{
			"avatar",
			MRoomAvatar,
			`{"url":"mxc://example.com/abc","info":{"mimetype":"image/png","h":64,"w":64}}`,
			&AvatarContent{URL: "mxc://example.com/abc", Info: &ImageInfo{Mimetype: "image/png", Height: 64, Width: 64}},
		},
		{
			"historyVisibility",
			MRoomHistoryVisibility,
			`{"history_visibility":"shared"}`,
			&HistoryVisibilityContent{HistoryVisibility: "shared"},
		},
		{
			"member",
			MRoomMember,
			`{"membership":"join","displayname":"Carl","join_authorised_via_users_server":"@bot:example.com"}`,
			&MemberContent{Membership: MembershipJoin, DisplayName: "Carl", AuthorisedVia: "@bot:example.com"},
		},
		{
			"joinRules",
			MRoomJoinRules,
			`{"join_rule":"restricted","allow":[{"type":"m.room_membership","room_id":"!a:example.com"}]}`,
			&JoinRulesContent{JoinRule: "restricted", Allow: []JoinRuleAllow{{Type: "m.room_membership", RoomID: "!a:example.com"}}},
		},
		{
			"tombstone",
			MRoomTombstone,
			`{"body":"upgraded","replacement_room":"!new:example.com"}`,
			&TombstoneContent{Body: "upgraded", ReplacementRoom: "!new:example.com"},
		},
		{
			"thirdPartyInvite",
			MRoomThirdPartyInvite,
			`{"display_name":"alice","key_validity_url":"https://id.example.com/valid","public_key":"abc123","public_keys":[{"public_key":"abc123"}]}`,
			&ThirdPartyInviteContent{
				DisplayName:    "alice",
				KeyValidityURL: "https://id.example.com/valid",
				PublicKey:      "abc123",
				PublicKeys:     []PublicKey{{PublicKey: "abc123"}},
			},
		},
		{
			"spaceChild",
			MSpaceChild,
			`{"via":["example.com"],"order":"aaa","suggested":true}`,
			&SpaceChildContent{Via: []spec.ServerName{"example.com"}, Order: "aaa", Suggested: true},
		},
	}
	for _, tst := range tsts {
		t.Run(tst.Name, func(t *testing.T) {
			content, err := ParseStateContent(tst.EventType, spec.RawJSON(tst.JSON))
			if err != nil {
				t.Fatalf("ParseStateContent failed: %v", err)
			}
			if content.EventType() != tst.EventType {
				t.Errorf("EventType: got %q, want %q", content.EventType(), tst.EventType)
			}
			if diff := cmp.Diff(tst.Want, content); diff != "" {
				t.Errorf("decoded content: +got -want:\n%s", diff)
			}
		})
	}
}

// An unrecognised state event type must decode into the custom fallback and
// survive a decode/encode cycle unchanged.
func TestCustomStateContentPassthrough(t *testing.T) {
	in := `{"com.example.color":"#ff0000","nested":{"a":[1,2]}}`
	content, err := ParseStateContent("com.example.theme", spec.RawJSON(in))
	require.NoError(t, err)

	custom, ok := content.(*CustomEventContent)
	require.True(t, ok, "expected *CustomEventContent, got %T", content)
	require.Equal(t, "com.example.theme", custom.EventType())

	out, err := MarshalContent(content)
	require.NoError(t, err)
	require.JSONEq(t, in, string(out))
}

func TestParseStateContentErrors(t *testing.T) {
	_, err := ParseStateContent(MRoomName, spec.RawJSON(`[]`))
	var discErr DiscriminatorError
	if !errors.As(err, &discErr) {
		t.Fatalf("got %v, want a DiscriminatorError", err)
	}

	_, err = ParseStateContent(MRoomName, spec.RawJSON(`{"name":[]}`))
	var shapeErr ShapeError
	if !errors.As(err, &shapeErr) {
		t.Fatalf("got %v, want a ShapeError", err)
	}
	if shapeErr.EventType != MRoomName {
		t.Errorf("error names type %q, want %q", shapeErr.EventType, MRoomName)
	}
}

func TestParseMessageLikeContentDispatch(t *testing.T) {
	content, err := ParseMessageLikeContent(MSticker, spec.RawJSON(`{"body":"coffee","url":"mxc://example.com/sticker","info":{"mimetype":"image/png"}}`))
	require.NoError(t, err)
	sticker := content.(*StickerContent)
	require.Equal(t, "coffee", sticker.Body)

	content, err = ParseMessageLikeContent(MRoomRedaction, spec.RawJSON(`{"redacts":"$abc","reason":"spam"}`))
	require.NoError(t, err)
	redaction := content.(*RedactionContent)
	require.Equal(t, spec.EventID("$abc"), redaction.Redacts)

	content, err = ParseMessageLikeContent(MRoomMessage, spec.RawJSON(`{"msgtype":"m.text","body":"hi"}`))
	require.NoError(t, err)
	message := content.(*RoomMessageContent)
	require.Equal(t, MText, message.Message.MsgType())

	content, err = ParseMessageLikeContent("com.example.beep", spec.RawJSON(`{"volume":11}`))
	require.NoError(t, err)
	require.IsType(t, &CustomEventContent{}, content)
}
