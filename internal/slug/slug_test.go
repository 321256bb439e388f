package slug

import "testing"

func TestRemoveDiacritics(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Jiří", "Jiri"},
		{"São Paulo", "Sao Paulo"},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		if got := RemoveDiacritics(tt.in); got != tt.want {
			t.Errorf("RemoveDiacritics(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMake(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"March 8, 2025", "march-8-2025"},
		{"Location (41.39, 2.17)", "location-41-39-2-17"},
		{"Výlet na Šumavu", "vylet-na-sumavu"},
		{"  spaces  everywhere  ", "spaces-everywhere"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Make(tt.in); got != tt.want {
			t.Errorf("Make(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
