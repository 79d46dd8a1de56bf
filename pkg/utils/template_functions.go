package utils

import (
	"fmt"
	"html/template"
	"reflect"
	"strings"
	"time"

	"cms-admin/internal/ui/popup"
	"cms-admin/internal/ui/selection"
	"cms-admin/pkg/slug"
)

// UIOptions configures the admin-specific template helpers.
type UIOptions struct {
	Popup     popup.Config
	Generator *slug.Generator
}

func GetTemplateFuncs(opts UIOptions) template.FuncMap {
	popupCfg := opts.Popup.WithDefaults()
	generator := opts.Generator
	if generator == nil {
		generator = slug.NewGenerator(slug.ModeFold)
	}

	return template.FuncMap{
		"formatDate": func(t time.Time, format string) string {
			layouts := map[string]string{
				"short":    "01/02/2006",
				"medium":   "January 02, 2006",
				"datetime": "01/02/2006 15:04",
				"iso":      time.RFC3339,
			}
			if layout, ok := layouts[format]; ok {
				return t.Format(layout)
			}
			return t.Format(format)
		},
		"pluralize": Pluralize,

		"default": func(defaultValue, value interface{}) interface{} {
			if isEmpty(value) {
				return defaultValue
			}
			return value
		},

		"slugify":  generator.Generate,
		"rowClass": selection.RowClass,
		"cellClass": func(group *selection.RadioGroup, option string) string {
			if group == nil {
				return ""
			}
			return group.CellClass(option)
		},
		"helpLink": popupCfg.HelpLink,
		"popupAttr": func(name string) string {
			return popupCfg.Attrs()[name]
		},
	}
}

func isEmpty(value interface{}) bool {
	if value == nil {
		return true
	}

	v := reflect.ValueOf(value)

	switch v.Kind() {
	case reflect.String:
		return strings.TrimSpace(v.String()) == ""
	case reflect.Bool:
		return false
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Slice, reflect.Array, reflect.Map:
		return v.Len() == 0
	case reflect.Ptr, reflect.Interface:
		return v.IsNil()
	}

	zero := reflect.Zero(v.Type())
	return reflect.DeepEqual(value, zero.Interface())
}

// Pluralize renders "1 item" / "3 items".
func Pluralize(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}
