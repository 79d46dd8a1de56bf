// Package naming decides whether a child name is acceptable inside a
// folder.
package naming

import (
	"strings"
)

// DefaultReserved are names that would shadow admin views.
var DefaultReserved = []string{
	"add",
	"delete",
	"contents",
	"rename",
	"edit",
	"workflow_transition",
	"history",
	"comment",
	"local_roles",
	"search",
	"object_view",
}

// NameSet answers whether a sibling already uses a name.
type NameSet interface {
	Has(name string) bool
}

// Names is a NameSet backed by a map.
type Names map[string]struct{}

func NewNames(names ...string) Names {
	set := make(Names, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

func (n Names) Has(name string) bool {
	_, ok := n[name]
	return ok
}

type Rename struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type Rules struct {
	Reserved []string
}

func DefaultRules() Rules {
	return Rules{Reserved: DefaultReserved}
}

// WithReserved returns a copy of r that also reserves names.
func (r Rules) WithReserved(names ...string) Rules {
	reserved := make([]string, 0, len(r.Reserved)+len(names))
	reserved = append(reserved, r.Reserved...)
	reserved = append(reserved, names...)
	return Rules{Reserved: reserved}
}

// Veto returns nil when name may be used. With unique set, a sibling using
// the same name is a veto. siblings may be nil.
func (r Rules) Veto(name string, siblings NameSet, unique bool) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return veto(ErrBlankName, name, "Name may not be blank.")
	}

	for _, reserved := range r.Reserved {
		if name == reserved {
			return veto(ErrReservedName, name, "%q is a reserved name.", name)
		}
	}

	for _, ch := range name {
		if !allowedNameChar(ch) {
			return veto(ErrInvalidChar, name, "The character %q is not allowed in names.", string(ch))
		}
	}

	if unique && siblings != nil && siblings.Has(name) {
		return veto(ErrNameInUse, name, "The name %q is already in use.", name)
	}

	return nil
}

// VetoRenames validates a batch of renames against the current siblings.
// Any name vacated by the batch may be reused by another rename in it,
// regardless of order, so swaps are allowed.
func (r Rules) VetoRenames(renames []Rename, siblings NameSet) error {
	oldNames := make(map[string]struct{})
	newNames := make(map[string]struct{})

	for _, rename := range renames {
		if rename.From != rename.To {
			oldNames[rename.From] = struct{}{}
		}
	}

	for _, rename := range renames {
		if rename.From == rename.To {
			continue
		}

		if err := r.Veto(rename.To, nil, false); err != nil {
			reason := err.Error()
			return veto(err, rename.To, "Cannot rename %q to %q. %s", rename.From, rename.To, reason)
		}

		if _, taken := newNames[rename.To]; taken {
			return veto(ErrNotUnique, rename.To, "The name %q would not be unique.", rename.To)
		}
		if _, freed := oldNames[rename.To]; !freed && siblings != nil && siblings.Has(rename.To) {
			return veto(ErrNameInUse, rename.To, "The name %q is already in use.", rename.To)
		}

		newNames[rename.To] = struct{}{}
	}

	return nil
}

func allowedNameChar(ch rune) bool {
	switch {
	case 'a' <= ch && ch <= 'z', 'A' <= ch && ch <= 'Z', '0' <= ch && ch <= '9':
		return true
	case ch == '.', ch == '-', ch == '_', ch == ' ':
		return true
	}
	return false
}
