// Package content keeps the items of an admin folder in memory.
package content

import (
	"errors"
	"strings"
	"sync"
	"time"

	"cms-admin/internal/naming"
)

var (
	ErrTitleRequired = errors.New("title is required")
	ErrUnknownGroup  = errors.New("unknown group")
	ErrUnknownRole   = errors.New("unknown role")
)

type Item struct {
	Name      string    `json:"name"`
	Title     string    `json:"title"`
	Kind      string    `json:"kind"`
	CreatedAt time.Time `json:"createdAt"`
}

// Folder is safe for concurrent use by request handlers.
type Folder struct {
	Name  string
	rules naming.Rules

	mu         sync.RWMutex
	items      map[string]*Item
	order      []string
	localRoles map[string]string
	now        func() time.Time
}

func NewFolder(name string, rules naming.Rules) *Folder {
	return &Folder{
		Name:       name,
		rules:      rules,
		items:      make(map[string]*Item),
		localRoles: make(map[string]string),
		now:        time.Now,
	}
}

// Has implements naming.NameSet.
func (f *Folder) Has(name string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, ok := f.items[name]
	return ok
}

// Veto checks a prospective child name without adding it.
func (f *Folder) Veto(name string) error {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.rules.Veto(name, f.nameSet(), true)
}

func (f *Folder) Add(name, title, kind string) (*Item, error) {
	name = strings.TrimSpace(name)
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	if kind == "" {
		kind = "article"
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.rules.Veto(name, f.nameSet(), true); err != nil {
		return nil, err
	}

	item := &Item{Name: name, Title: title, Kind: kind, CreatedAt: f.now()}
	f.items[name] = item
	f.order = append(f.order, name)

	copied := *item
	return &copied, nil
}

func (f *Folder) Items() []Item {
	f.mu.RLock()
	defer f.mu.RUnlock()

	items := make([]Item, 0, len(f.order))
	for _, name := range f.order {
		items = append(items, *f.items[name])
	}
	return items
}

func (f *Folder) Names() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return append([]string(nil), f.order...)
}

// Rename applies a batch of renames after validating all of them. Pairs
// naming a missing child are skipped. It returns the number renamed.
func (f *Folder) Rename(renames []naming.Rename) (int, error) {
	normalized := make([]naming.Rename, 0, len(renames))
	for _, rename := range renames {
		normalized = append(normalized, naming.Rename{From: rename.From, To: strings.TrimSpace(rename.To)})
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.rules.VetoRenames(normalized, f.nameSet()); err != nil {
		return 0, err
	}

	moved := make(map[string]*Item)
	targets := make(map[string]string)
	for _, rename := range normalized {
		if rename.From == rename.To {
			continue
		}
		item, ok := f.items[rename.From]
		if !ok {
			continue
		}
		moved[rename.From] = item
		targets[rename.From] = rename.To
	}

	for from := range moved {
		delete(f.items, from)
	}
	for from, item := range moved {
		item.Name = targets[from]
		f.items[item.Name] = item
	}
	for i, name := range f.order {
		if to, ok := targets[name]; ok {
			f.order[i] = to
		}
	}

	return len(moved), nil
}

// Delete removes the named children and returns how many existed.
func (f *Folder) Delete(names []string) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	removed := make(map[string]struct{})
	for _, name := range names {
		if _, ok := f.items[name]; ok {
			delete(f.items, name)
			removed[name] = struct{}{}
		}
	}
	if len(removed) == 0 {
		return 0
	}

	kept := f.order[:0]
	for _, name := range f.order {
		if _, gone := removed[name]; !gone {
			kept = append(kept, name)
		}
	}
	f.order = kept
	return len(removed)
}

// LocalRoles maps "group:<name>" principals to "group:<role>".
func (f *Folder) LocalRoles() map[string]string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	roles := make(map[string]string, len(f.localRoles))
	for principal, role := range f.localRoles {
		roles[principal] = role
	}
	return roles
}

func (f *Folder) SetLocalRoles(roles map[string]string) {
	copied := make(map[string]string, len(roles))
	for principal, role := range roles {
		copied[principal] = role
	}

	f.mu.Lock()
	f.localRoles = copied
	f.mu.Unlock()
}

func (f *Folder) nameSet() naming.Names {
	names := make(naming.Names, len(f.items))
	for name := range f.items {
		names[name] = struct{}{}
	}
	return names
}
