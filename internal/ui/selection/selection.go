// Package selection maps checkbox and radio state to the CSS classes the
// admin templates put on table rows and cells.
package selection

// CheckedClass marks a row or cell whose control is checked.
const CheckedClass = "checked"

// RowClass is the class for a container whose control is in the given state.
func RowClass(checked bool) string {
	if checked {
		return CheckedClass
	}
	return ""
}

type Row struct {
	Name    string `json:"name"`
	Checked bool   `json:"checked"`
}

func (r Row) Class() string {
	return RowClass(r.Checked)
}

// Tracker holds the checkbox state of a bulk-action form in display order.
type Tracker struct {
	rows  []Row
	index map[string]int
}

// NewTracker builds rows for names, checking those listed in checked.
// Duplicate names keep their first position.
func NewTracker(names []string, checked []string) *Tracker {
	t := &Tracker{
		rows:  make([]Row, 0, len(names)),
		index: make(map[string]int, len(names)),
	}
	for _, name := range names {
		if _, exists := t.index[name]; exists {
			continue
		}
		t.index[name] = len(t.rows)
		t.rows = append(t.rows, Row{Name: name})
	}
	for _, name := range checked {
		t.Set(name, true)
	}
	return t
}

// FromRows builds a tracker from rows that already carry their state.
func FromRows(rows []Row) *Tracker {
	names := make([]string, 0, len(rows))
	var checked []string
	for _, row := range rows {
		names = append(names, row.Name)
		if row.Checked {
			checked = append(checked, row.Name)
		}
	}
	return NewTracker(names, checked)
}

// Set changes one row. It reports false for an unknown name.
func (t *Tracker) Set(name string, checked bool) bool {
	i, ok := t.index[name]
	if !ok {
		return false
	}
	t.rows[i].Checked = checked
	return true
}

// InvertAll flips every row in one pass.
func (t *Tracker) InvertAll() {
	for i := range t.rows {
		t.rows[i].Checked = !t.rows[i].Checked
	}
}

func (t *Tracker) IsChecked(name string) bool {
	i, ok := t.index[name]
	return ok && t.rows[i].Checked
}

func (t *Tracker) Rows() []Row {
	rows := make([]Row, len(t.rows))
	copy(rows, t.rows)
	return rows
}

// Selected returns the checked names in display order.
func (t *Tracker) Selected() []string {
	var names []string
	for _, row := range t.rows {
		if row.Checked {
			names = append(names, row.Name)
		}
	}
	return names
}

func (t *Tracker) Classes() map[string]string {
	classes := make(map[string]string, len(t.rows))
	for _, row := range t.rows {
		classes[row.Name] = row.Class()
	}
	return classes
}

func (t *Tracker) Len() int {
	return len(t.rows)
}
