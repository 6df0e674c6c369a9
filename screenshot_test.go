package lumen

import "testing"

func TestSanitizeLabel(t *testing.T) {
	for _, tc := range []struct {
		in, want string
	}{
		{"boss-fight", "boss-fight"},
		{"level 2/act 1", "level_2_act_1"},
		{"  spaced  ", "spaced"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"v1.2", "v1.2"},
	} {
		if got := sanitizeLabel(tc.in); got != tc.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestUnmultiply(t *testing.T) {
	px := []byte{64, 32, 16, 128}
	unmultiply(px)
	if px[0] != 127 || px[1] != 63 || px[2] != 31 || px[3] != 128 {
		t.Errorf("pixel = %v, want [127 63 31 128]", px)
	}

	opaque := []byte{10, 20, 30, 255}
	unmultiply(opaque)
	if opaque[0] != 10 || opaque[1] != 20 || opaque[2] != 30 {
		t.Error("opaque pixels must pass through unchanged")
	}

	clear := []byte{0, 0, 0, 0}
	unmultiply(clear)
	if clear[0] != 0 || clear[3] != 0 {
		t.Error("transparent pixels must pass through unchanged")
	}
}
