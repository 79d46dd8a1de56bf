package service

import (
	"fmt"

	"cms-admin/internal/content"
	"cms-admin/internal/naming"
	"cms-admin/internal/ui/selection"
	"cms-admin/pkg/utils"
)

const (
	NoticeInfo  = "info"
	NoticeWarn  = "warn"
	NoticeError = "error"
)

// Notice is a one-off message shown above an admin form.
type Notice struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type ContentsService struct {
	folder *content.Folder
	groups *content.Groups
}

func NewContentsService(folder *content.Folder, groups *content.Groups) *ContentsService {
	return &ContentsService{folder: folder, groups: groups}
}

func (s *ContentsService) Folder() *content.Folder {
	return s.folder
}

func (s *ContentsService) Items() []content.Item {
	return s.folder.Items()
}

// Selection returns the checkbox state of the contents form with checked
// names ticked.
func (s *ContentsService) Selection(checked []string) *selection.Tracker {
	return selection.NewTracker(s.folder.Names(), checked)
}

// Invert flips every row of the contents form.
func (s *ContentsService) Invert(checked []string) *selection.Tracker {
	tracker := s.Selection(checked)
	tracker.InvertAll()
	return tracker
}

func (s *ContentsService) Add(name, title, kind string) (*content.Item, error) {
	return s.folder.Add(name, title, kind)
}

// CheckName reports whether name could be added to the folder right now.
func (s *ContentsService) CheckName(name string) error {
	return s.folder.Veto(name)
}

func (s *ContentsService) Delete(names []string) Notice {
	if len(names) == 0 {
		return Notice{Kind: NoticeWarn, Message: "You didn't select any items to delete."}
	}
	n := s.folder.Delete(names)
	return Notice{Kind: NoticeInfo, Message: fmt.Sprintf("Deleted %s.", itemCount(n))}
}

// Rename pairs origNames with newNames by position and renames the ones
// that changed.
func (s *ContentsService) Rename(origNames, newNames []string) Notice {
	var renames []naming.Rename
	for i := 0; i < len(origNames) && i < len(newNames); i++ {
		if origNames[i] != newNames[i] {
			renames = append(renames, naming.Rename{From: origNames[i], To: newNames[i]})
		}
	}

	n, err := s.folder.Rename(renames)
	if err != nil {
		return Notice{Kind: NoticeError, Message: err.Error()}
	}
	return Notice{Kind: NoticeInfo, Message: fmt.Sprintf("Renamed %s.", itemCount(n))}
}

// RoleGroups builds one radio group per user group, preselecting the
// folder's current local role or content.NoRole.
func (s *ContentsService) RoleGroups() []*selection.RadioGroup {
	current := s.folder.LocalRoles()
	options := append([]string{content.NoRole}, s.groups.Roles()...)

	groups := make([]*selection.RadioGroup, 0, len(s.groups.Names()))
	for _, name := range s.groups.Names() {
		role := content.RoleFor(current, name)
		if role == "" {
			role = content.NoRole
		}
		groups = append(groups, selection.NewRadioGroup(name, options, role))
	}
	return groups
}

func (s *ContentsService) SaveLocalRoles(choices map[string]string) (Notice, error) {
	roles, err := s.groups.BuildLocalRoles(choices)
	if err != nil {
		return Notice{Kind: NoticeError, Message: err.Error()}, err
	}
	s.folder.SetLocalRoles(roles)
	return Notice{Kind: NoticeInfo, Message: "Saved local roles."}, nil
}

func (s *ContentsService) GroupNames() []string {
	return s.groups.Names()
}

func itemCount(n int) string {
	return utils.Pluralize(n, "item", "items")
}
