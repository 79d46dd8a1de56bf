package namegen

import (
	"net/url"
	"testing"

	"cms-admin/pkg/slug"
)

type textField struct {
	value  string
	writes int
}

func (f *textField) Value() string { return f.value }

func (f *textField) SetValue(value string) {
	f.value = value
	f.writes++
}

func TestAttachGeneratesOnPress(t *testing.T) {
	title := &textField{value: "Hello World"}
	name := &textField{value: "old-name"}
	button := NewButton()

	handle := Attach(title, name, button, nil)
	defer handle.Close()

	button.Press()

	if name.value != "hello-world" {
		t.Fatalf("expected name to be overwritten with hello-world, got %q", name.value)
	}
	if name.writes != 1 {
		t.Fatalf("expected exactly one write, got %d", name.writes)
	}
}

func TestEmptySourceIsNoOp(t *testing.T) {
	title := &textField{}
	name := &textField{value: "keep-me"}

	handle := Attach(title, name, nil, nil)
	if handle.Generate() {
		t.Fatalf("expected Generate to report no update for empty title")
	}
	if name.value != "keep-me" || name.writes != 0 {
		t.Fatalf("expected destination untouched, got %q after %d writes", name.value, name.writes)
	}
}

func TestRegeneratesFromCurrentTitle(t *testing.T) {
	title := &textField{value: "First Title"}
	name := &textField{}
	button := NewButton()
	Attach(title, name, button, nil)

	button.Press()
	title.value = "Second Title"
	button.Press()

	if name.value != "second-title" {
		t.Fatalf("expected slug from latest title, got %q", name.value)
	}
}

func TestCloseDetachesTrigger(t *testing.T) {
	title := &textField{value: "Hello"}
	name := &textField{}
	button := NewButton()

	handle := Attach(title, name, button, nil)
	button.Press()
	if name.writes != 1 {
		t.Fatalf("expected one write while attached, got %d", name.writes)
	}

	if err := handle.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
	if err := handle.Close(); err != nil {
		t.Fatalf("second Close returned error: %v", err)
	}
	button.Press()
	if name.writes != 1 {
		t.Fatalf("expected no writes after Close, got %d", name.writes-1)
	}
}

func TestGeneratorModeIsUsed(t *testing.T) {
	title := &textField{value: "Café"}
	name := &textField{}

	Attach(title, name, nil, slug.NewGenerator(slug.ModeSeparator)).Generate()

	if name.value != "caf" {
		t.Fatalf("expected separator mode output caf, got %q", name.value)
	}
}

func TestFormField(t *testing.T) {
	values := url.Values{}
	values.Set("title", "Annual Report")
	values.Set("name", "draft")

	handle := Attach(FormField(values, "title"), FormField(values, "name"), nil, nil)
	if !handle.Generate() {
		t.Fatalf("expected Generate to update form values")
	}
	if got := values.Get("name"); got != "annual-report" {
		t.Fatalf("expected name form value annual-report, got %q", got)
	}
}
