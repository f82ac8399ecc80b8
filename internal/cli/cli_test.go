package cli

import "testing"

func TestIsValidCFPURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want bool
	}{
		{"event page", "http://wikicfp.com/cfp/servlet/event.showcfp?eventid=12345", true},
		{"https scheme", "https://wikicfp.com/cfp/", true},
		{"www subdomain", "http://www.wikicfp.com/cfp/home", true},
		{"bare host", "http://wikicfp.com", true},
		{"other site", "http://example.com/cfp", false},
		{"host merely containing the name", "http://notwikicfp.com/cfp", false},
		{"empty", "", false},
		{"not a URL", "://bad", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isValidCFPURL(tt.url); got != tt.want {
				t.Errorf("isValidCFPURL(%q) = %v, expected %v", tt.url, got, tt.want)
			}
		})
	}
}

func TestRootCmdFlags(t *testing.T) {
	cmd := NewRootCmd()

	if cmd.Flags().Lookup("url") == nil {
		t.Error("expected --url flag")
	}
	if f := cmd.Flags().Lookup("model"); f == nil {
		t.Error("expected --model flag")
	} else if f.DefValue != "m1" {
		t.Errorf("--model default = %q, expected m1", f.DefValue)
	}
	if f := cmd.Flags().Lookup("format"); f == nil {
		t.Error("expected --format flag")
	} else if f.DefValue != "text" {
		t.Errorf("--format default = %q, expected text", f.DefValue)
	}
}
