package selection

// Cell is one option of a radio group as rendered in a table cell.
type Cell struct {
	Option  string `json:"option"`
	Checked bool   `json:"checked"`
	Class   string `json:"class"`
}

// RadioGroup is a set of mutually exclusive options. At most one option is
// selected; classes are always derived from the whole group.
type RadioGroup struct {
	Name     string
	options  []string
	selected string
}

// NewRadioGroup computes the initial state. A selected value that is not
// one of the options leaves the group unselected.
func NewRadioGroup(name string, options []string, selected string) *RadioGroup {
	g := &RadioGroup{
		Name:    name,
		options: append([]string(nil), options...),
	}
	g.Select(selected)
	return g
}

// Select checks option and unchecks every other one. An unknown option
// clears the selection and reports false.
func (g *RadioGroup) Select(option string) bool {
	for _, candidate := range g.options {
		if candidate == option {
			g.selected = option
			return true
		}
	}
	g.selected = ""
	return false
}

func (g *RadioGroup) Selected() string {
	return g.selected
}

func (g *RadioGroup) Options() []string {
	return append([]string(nil), g.options...)
}

func (g *RadioGroup) CellClass(option string) string {
	return RowClass(g.selected != "" && option == g.selected)
}

func (g *RadioGroup) Cells() []Cell {
	cells := make([]Cell, 0, len(g.options))
	for _, option := range g.options {
		checked := g.selected != "" && option == g.selected
		cells = append(cells, Cell{Option: option, Checked: checked, Class: RowClass(checked)})
	}
	return cells
}
