package selection

import (
	"reflect"
	"testing"
)

func TestRadioGroupInitialState(t *testing.T) {
	group := NewRadioGroup("news_role", []string{"", "editor", "publisher"}, "editor")

	expected := []Cell{
		{Option: "", Checked: false, Class: ""},
		{Option: "editor", Checked: true, Class: "checked"},
		{Option: "publisher", Checked: false, Class: ""},
	}
	if !reflect.DeepEqual(group.Cells(), expected) {
		t.Fatalf("unexpected cells: %+v", group.Cells())
	}
}

func TestRadioGroupSelectRecomputesWholeGroup(t *testing.T) {
	group := NewRadioGroup("news_role", []string{"editor", "publisher"}, "editor")

	if !group.Select("publisher") {
		t.Fatalf("expected publisher to be selectable")
	}
	if group.CellClass("editor") != "" {
		t.Fatalf("expected previous option to lose its class")
	}
	if group.CellClass("publisher") != "checked" {
		t.Fatalf("expected new option to gain the class")
	}

	checked := 0
	for _, cell := range group.Cells() {
		if cell.Checked {
			checked++
		}
	}
	if checked != 1 {
		t.Fatalf("expected exactly one checked cell, got %d", checked)
	}
}

func TestRadioGroupUnknownOption(t *testing.T) {
	group := NewRadioGroup("g", []string{"a", "b"}, "nope")
	if group.Selected() != "" {
		t.Fatalf("expected no selection for unknown initial value, got %q", group.Selected())
	}

	group.Select("a")
	if group.Select("zzz") {
		t.Fatalf("expected unknown option to be rejected")
	}
	if group.Selected() != "" || group.CellClass("a") != "" {
		t.Fatalf("expected unknown option to clear the selection")
	}
}

func TestRadioGroupOptionsAreCopied(t *testing.T) {
	options := []string{"a", "b"}
	group := NewRadioGroup("g", options, "a")
	options[0] = "changed"

	if group.Options()[0] != "a" {
		t.Fatalf("expected group to keep its own copy of options")
	}
}
