package utils

import (
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"sort"
)

// LoadTemplates parses every *.html file at the root of files, base.html
// first so pages can use its definitions.
func LoadTemplates(files fs.FS, funcMap template.FuncMap) (*template.Template, error) {
	matches, err := fs.Glob(files, "*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to glob templates: %w", err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no templates found")
	}

	sort.Strings(matches)

	ordered := make([]string, 0, len(matches))
	for _, file := range matches {
		if path.Base(file) == "base.html" {
			ordered = append(ordered, file)
		}
	}
	for _, file := range matches {
		if path.Base(file) != "base.html" {
			ordered = append(ordered, file)
		}
	}

	root := template.New(path.Base(ordered[0])).Funcs(funcMap)

	if _, err := root.ParseFS(files, ordered...); err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return root, nil
}
