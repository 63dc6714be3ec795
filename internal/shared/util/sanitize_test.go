package util

import "testing"

func TestSanitizeFileName(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"plain", "resume.pdf", "resume.pdf", false},
		{"traversal", "../etc/passwd", "", true},
		{"slashes", "a/b\\c.pdf", "a_b_c.pdf", false},
		{"empty", "   ", "", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := SanitizeFileName(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestSanitizeNamePart(t *testing.T) {
	if got := SanitizeNamePart("Data Scientist"); got != "Data_Scientist" {
		t.Fatalf("got %q", got)
	}
	if got := SanitizeNamePart(""); got != "unknown" {
		t.Fatalf("got %q", got)
	}
	if got := SanitizeNamePart("a/../b"); got == "a/../b" {
		t.Fatalf("separators not stripped: %q", got)
	}
}
