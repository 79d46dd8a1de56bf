package content

import (
	"fmt"
	"sort"
	"strings"
)

const (
	principalPrefix = "group:"
	// NoRole is the radio option for "no local role".
	NoRole = "none"
)

// DefaultSystemRoles are the system-level groups a local role can point at.
var DefaultSystemRoles = []string{"viewer", "editor", "publisher", "admin"}

// Groups lists the user groups and the system roles they may be granted
// locally.
type Groups struct {
	names []string
	roles []string
}

func NewGroups(names []string, roles []string) *Groups {
	g := &Groups{
		names: dedupe(names),
		roles: dedupe(roles),
	}
	sort.Strings(g.names)
	return g
}

func (g *Groups) Names() []string {
	return append([]string(nil), g.names...)
}

func (g *Groups) Roles() []string {
	return append([]string(nil), g.roles...)
}

func (g *Groups) HasGroup(name string) bool {
	return contains(g.names, name)
}

func (g *Groups) HasRole(role string) bool {
	return contains(g.roles, role)
}

// BuildLocalRoles turns a group → role choice into the principal mapping
// stored on a folder. An empty role or NoRole grants nothing.
func (g *Groups) BuildLocalRoles(choices map[string]string) (map[string]string, error) {
	roles := make(map[string]string)
	for group, role := range choices {
		if !g.HasGroup(group) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownGroup, group)
		}
		if role == "" || role == NoRole {
			continue
		}
		if !g.HasRole(role) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownRole, role)
		}
		roles[Principal(group)] = Principal(role)
	}
	return roles, nil
}

// RoleFor returns the role currently granted to group in roles, or "".
func RoleFor(roles map[string]string, group string) string {
	return strings.TrimPrefix(roles[Principal(group)], principalPrefix)
}

func Principal(name string) string {
	return principalPrefix + name
}

func contains(values []string, value string) bool {
	for _, candidate := range values {
		if candidate == value {
			return true
		}
	}
	return false
}

func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, value := range values {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}
	return out
}
