package popup

import (
	"errors"
	"strings"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Width != "700px" || cfg.MaxHeight != "90%" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{"percent width", Config{Width: "80%", MaxHeight: "50%"}, nil},
		{"missing unit", Config{Width: "700", MaxHeight: "90%"}, ErrInvalidWidth},
		{"zero width", Config{Width: "0px", MaxHeight: "90%"}, ErrInvalidWidth},
		{"pixel height", Config{Width: "700px", MaxHeight: "600px"}, ErrInvalidMaxHeight},
		{"height over 100", Config{Width: "700px", MaxHeight: "120%"}, ErrInvalidMaxHeight},
		{"full height", Config{Width: "700px", MaxHeight: "100%"}, nil},
	}

	for _, tc := range testCases {
		err := tc.cfg.Validate()
		if tc.wantErr == nil && err != nil {
			t.Errorf("%s: unexpected error %v", tc.name, err)
		}
		if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.wantErr, err)
		}
	}
}

func TestWithDefaults(t *testing.T) {
	cfg := Config{Width: "500px"}.WithDefaults()
	if cfg.Width != "500px" || cfg.MaxHeight != DefaultMaxHeight || cfg.Selector != DefaultSelector {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestAttrs(t *testing.T) {
	attrs := Config{}.Attrs()
	if attrs["data-popup-width"] != "700px" {
		t.Fatalf("expected default width attr, got %q", attrs["data-popup-width"])
	}
	if attrs["data-popup-max-height"] != "90%" {
		t.Fatalf("expected default max height attr, got %q", attrs["data-popup-max-height"])
	}
}

func TestHelpLinkEscapes(t *testing.T) {
	link := string(DefaultConfig().HelpLink("/admin/help/names?x=1&y=2", "<Names>"))

	if !strings.Contains(link, `class="help_link"`) {
		t.Fatalf("expected help_link class in %s", link)
	}
	if !strings.Contains(link, "&amp;y=2") {
		t.Fatalf("expected href escaped in %s", link)
	}
	if strings.Contains(link, "<Names>") {
		t.Fatalf("expected label escaped in %s", link)
	}
}
