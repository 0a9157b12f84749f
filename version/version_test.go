package version

import (
	"errors"
	"testing"
)

func TestBeforeAndAtLeast(t *testing.T) {
	tsts := []struct {
		Name       string
		Version    RoomVersion
		Release    int
		WantBefore bool
	}{
		{"v1BeforeV11", V1, 11, true},
		{"v10BeforeV11", V10, 11, true},
		{"v11NotBeforeV11", V11, 11, false},
		{"v8NotBeforeV8", V8, 8, false},
		{"v7BeforeV8", V7, 8, true},
		// Versions that aren't plain release numbers are assumed to be
		// newer than every numbered release.
		{"vendoredVersion", RoomVersion("org.matrix.msc2176"), 11, false},
	}
	for _, tst := range tsts {
		t.Run(tst.Name, func(t *testing.T) {
			if got := tst.Version.Before(tst.Release); got != tst.WantBefore {
				t.Errorf("(%q).Before(%d): got %v, want %v", tst.Version, tst.Release, got, tst.WantBefore)
			}
			if got := tst.Version.AtLeast(tst.Release); got == tst.WantBefore {
				t.Errorf("(%q).AtLeast(%d): got %v, want %v", tst.Version, tst.Release, got, !tst.WantBefore)
			}
		})
	}
}

func TestDescription(t *testing.T) {
	if _, err := Description(V10); err != nil {
		t.Fatalf("Description(V10): %v", err)
	}
	_, err := Description(RoomVersion("0"))
	var unknown UnknownVersionError
	if !errors.As(err, &unknown) {
		t.Fatalf("Description(\"0\"): got %v, want UnknownVersionError", err)
	}
	if unknown.Version != "0" {
		t.Errorf("UnknownVersionError.Version: got %q, want %q", unknown.Version, "0")
	}
}

func TestSupportedRoomVersions(t *testing.T) {
	supported := SupportedRoomVersions()
	if _, ok := supported[DefaultRoomVersion()]; !ok {
		t.Errorf("default room version %q is not in the supported set", DefaultRoomVersion())
	}
	for v, desc := range supported {
		if !desc.Supported {
			t.Errorf("room version %q is in the supported set but marked unsupported", v)
		}
	}
}
