// Package popup configures the lightbox that opens help links.
package popup

import (
	"errors"
	"fmt"
	"html/template"
	"strconv"
	"strings"
)

const (
	DefaultWidth     = "700px"
	DefaultMaxHeight = "90%"
	DefaultSelector  = ".help_link"
	// HelpLinkClass flags an anchor as a help link.
	HelpLinkClass = "help_link"
)

var (
	ErrInvalidWidth     = errors.New("popup width must be a positive pixel or percent length")
	ErrInvalidMaxHeight = errors.New("popup max height must be a percentage of the viewport between 1% and 100%")
)

type Config struct {
	Width     string `json:"width"`
	MaxHeight string `json:"maxHeight"`
	Selector  string `json:"selector"`
}

func DefaultConfig() Config {
	return Config{
		Width:     DefaultWidth,
		MaxHeight: DefaultMaxHeight,
		Selector:  DefaultSelector,
	}
}

// WithDefaults fills empty fields from DefaultConfig.
func (c Config) WithDefaults() Config {
	defaults := DefaultConfig()
	if strings.TrimSpace(c.Width) == "" {
		c.Width = defaults.Width
	}
	if strings.TrimSpace(c.MaxHeight) == "" {
		c.MaxHeight = defaults.MaxHeight
	}
	if strings.TrimSpace(c.Selector) == "" {
		c.Selector = defaults.Selector
	}
	return c
}

func (c Config) Validate() error {
	if _, ok := parseLength(c.Width, "px"); !ok {
		if _, ok := parseLength(c.Width, "%"); !ok {
			return fmt.Errorf("%w: %q", ErrInvalidWidth, c.Width)
		}
	}

	pct, ok := parseLength(c.MaxHeight, "%")
	if !ok || pct > 100 {
		return fmt.Errorf("%w: %q", ErrInvalidMaxHeight, c.MaxHeight)
	}
	return nil
}

// Attrs are the data attributes a help link carries so the lightbox script
// can size the popup.
func (c Config) Attrs() map[string]string {
	c = c.WithDefaults()
	return map[string]string{
		"data-popup":            "help",
		"data-popup-width":      c.Width,
		"data-popup-max-height": c.MaxHeight,
		"data-popup-selector":   c.Selector,
	}
}

// HelpLink renders an anchor flagged as a help link.
func (c Config) HelpLink(href, label string) template.HTML {
	c = c.WithDefaults()
	return template.HTML(fmt.Sprintf(
		`<a href="%s" class="%s" data-popup="help" data-popup-width="%s" data-popup-max-height="%s">%s</a>`,
		template.HTMLEscapeString(href),
		HelpLinkClass,
		template.HTMLEscapeString(c.Width),
		template.HTMLEscapeString(c.MaxHeight),
		template.HTMLEscapeString(label),
	))
}

func parseLength(value, unit string) (int, bool) {
	value = strings.TrimSpace(value)
	if !strings.HasSuffix(value, unit) {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSuffix(value, unit))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
