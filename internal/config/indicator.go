package config

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/pkg/errors"
)

// Indicator formats the page position line shown under a message.
type Indicator struct {
	tmpl *template.Template
}

type indicatorData struct {
	Page  int // zero-based
	Total int
}

// NewIndicator parses a text/template with sprig functions available.
func NewIndicator(text string) (*Indicator, error) {
	tmpl, err := template.New("pageIndicator").Funcs(sprig.TxtFuncMap()).Parse(text)
	if err != nil {
		return nil, errors.Wrap(err, "parse pageIndicator")
	}
	return &Indicator{tmpl: tmpl}, nil
}

// Format renders the indicator for a zero-based page of total pages.
func (i *Indicator) Format(page, total int) string {
	fallback := fmt.Sprintf("Page: %d/%d", page+1, total)
	if i == nil || i.tmpl == nil {
		return fallback
	}
	var b strings.Builder
	if err := i.tmpl.Execute(&b, indicatorData{Page: page, Total: total}); err != nil {
		return fallback
	}
	return b.String()
}
