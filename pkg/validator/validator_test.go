package validator

import (
	"strings"
	"testing"

	"github.com/gin-gonic/gin/binding"
)

type modeRequest struct {
	Mode string `binding:"omitempty,slug_mode"`
}

func TestSlugModeBindingTag(t *testing.T) {
	Init()

	testCases := []struct {
		name    string
		mode    string
		wantErr bool
	}{
		{"empty", "", false},
		{"fold", "fold", false},
		{"separator alias", "strict", false},
		{"transliterate", "transliterate", false},
		{"unknown", "rot13", true},
	}

	for _, tc := range testCases {
		err := binding.Validator.ValidateStruct(modeRequest{Mode: tc.mode})
		if (err != nil) != tc.wantErr {
			t.Errorf("%s: ValidateStruct error = %v, wantErr %v", tc.name, err, tc.wantErr)
		}
	}
}

func TestSanitizeHTML(t *testing.T) {
	out := SanitizeHTML(`<p>Help</p><script>alert(1)</script>`)
	if strings.Contains(out, "script") {
		t.Fatalf("expected script removed, got %q", out)
	}
	if !strings.Contains(out, "<p>Help</p>") {
		t.Fatalf("expected paragraph kept, got %q", out)
	}
}
