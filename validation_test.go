package partlog

import "testing"

func TestSanitizeURL(t *testing.T) {
	testCases := []struct {
		raw  string
		want string // "" means an error is expected
	}{
		{"https://newegg.example/rtx-4070", "https://newegg.example/rtx-4070"},
		{"http://shop.example/item?id=42", "http://shop.example/item?id=42"},
		{"  https://shop.example/x  ", "https://shop.example/x"},
		{"HTTPS://shop.example/x", "https://shop.example/x"},
		{"javascript:alert(1)", ""},
		{"data:text/html,hi", ""},
		{"file:///etc/passwd", ""},
		{"ftp://shop.example/x", ""},
		{"shop.example/no-scheme", ""},
		{"https://", ""},
		{"", ""},
	}

	for _, tc := range testCases {
		got, err := SanitizeURL(tc.raw)
		if tc.want == "" {
			if err == nil {
				t.Errorf("SanitizeURL(%q) = %q, want an error", tc.raw, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("SanitizeURL(%q): %v", tc.raw, err)
			continue
		}
		if got != tc.want {
			t.Errorf("SanitizeURL(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}
