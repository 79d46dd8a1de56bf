package service

import (
	"errors"
	"reflect"
	"testing"

	"cms-admin/internal/content"
	"cms-admin/internal/naming"
)

func newContentsService(t *testing.T, names ...string) *ContentsService {
	t.Helper()
	folder := content.NewFolder("root", naming.DefaultRules())
	for _, name := range names {
		if _, err := folder.Add(name, "Title "+name, ""); err != nil {
			t.Fatalf("failed to seed %s: %v", name, err)
		}
	}
	groups := content.NewGroups([]string{"news", "events"}, content.DefaultSystemRoles)
	return NewContentsService(folder, groups)
}

func TestContentsServiceInvert(t *testing.T) {
	svc := newContentsService(t, "a", "b", "c")

	tracker := svc.Invert([]string{"a"})
	if !reflect.DeepEqual(tracker.Selected(), []string{"b", "c"}) {
		t.Fatalf("expected b and c selected after invert, got %v", tracker.Selected())
	}
}

func TestContentsServiceDelete(t *testing.T) {
	svc := newContentsService(t, "a", "b", "c")

	notice := svc.Delete(nil)
	if notice.Kind != NoticeWarn || notice.Message != "You didn't select any items to delete." {
		t.Fatalf("unexpected notice for empty selection: %+v", notice)
	}

	notice = svc.Delete([]string{"a"})
	if notice.Kind != NoticeInfo || notice.Message != "Deleted 1 item." {
		t.Fatalf("unexpected notice: %+v", notice)
	}

	notice = svc.Delete([]string{"b", "c"})
	if notice.Message != "Deleted 2 items." {
		t.Fatalf("unexpected notice: %+v", notice)
	}
	if len(svc.Items()) != 0 {
		t.Fatalf("expected folder to be empty, got %v", svc.Items())
	}
}

func TestContentsServiceRename(t *testing.T) {
	svc := newContentsService(t, "a", "b")

	notice := svc.Rename([]string{"a", "b"}, []string{"x", "b"})
	if notice.Kind != NoticeInfo || notice.Message != "Renamed 1 item." {
		t.Fatalf("unexpected notice: %+v", notice)
	}

	notice = svc.Rename([]string{"x", "b"}, []string{"b", "b"})
	if notice.Kind != NoticeError {
		t.Fatalf("expected error notice for clashing rename, got %+v", notice)
	}
	if !reflect.DeepEqual(svc.Folder().Names(), []string{"x", "b"}) {
		t.Fatalf("expected names unchanged after veto, got %v", svc.Folder().Names())
	}
}

func TestContentsServiceRoleGroups(t *testing.T) {
	svc := newContentsService(t)

	if _, err := svc.SaveLocalRoles(map[string]string{"news": "editor", "events": content.NoRole}); err != nil {
		t.Fatalf("SaveLocalRoles returned error: %v", err)
	}

	groups := svc.RoleGroups()
	if len(groups) != 2 {
		t.Fatalf("expected 2 radio groups, got %d", len(groups))
	}

	selected := map[string]string{}
	for _, group := range groups {
		selected[group.Name] = group.Selected()
	}
	expected := map[string]string{"events": content.NoRole, "news": "editor"}
	if !reflect.DeepEqual(selected, expected) {
		t.Fatalf("expected %v, got %v", expected, selected)
	}

	for _, group := range groups {
		if group.Name == "events" && group.CellClass(content.NoRole) != "checked" {
			t.Fatalf("expected the none option to be highlighted for events")
		}
	}
}

func TestContentsServiceSaveLocalRolesRejectsUnknownRole(t *testing.T) {
	svc := newContentsService(t)

	notice, err := svc.SaveLocalRoles(map[string]string{"news": "overlord"})
	if !errors.Is(err, content.ErrUnknownRole) {
		t.Fatalf("expected ErrUnknownRole, got %v", err)
	}
	if notice.Kind != NoticeError {
		t.Fatalf("expected error notice, got %+v", notice)
	}
	if len(svc.Folder().LocalRoles()) != 0 {
		t.Fatalf("expected roles unchanged")
	}
}
