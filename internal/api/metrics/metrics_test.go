package metrics

import "testing"

func TestUploadContentType(t *testing.T) {
	cases := map[string]string{
		"image/png":               "image/png",
		"IMAGE/JPEG":              "image/jpeg",
		"image/gif; charset=utf8": "image/gif",
		"image/webp":              "image/webp",
		"image/svg+xml":           "other",
		"x/attacker-1":            "other",
		"":                        "other",
		"not a media type":        "other",
	}
	for in, want := range cases {
		if got := UploadContentType(in); got != want {
			t.Errorf("UploadContentType(%q) = %q, want %q", in, got, want)
		}
	}
}
