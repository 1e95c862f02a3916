package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/aretw0/exprtree/pkg/domain"
)

// NewRenderer returns a function that renders markdown using glamour.
// style is a glamour standard style name ("dark", "light", "notty"); empty
// means auto-detect from the terminal background.
func NewRenderer(style string) (func(string) (string, error), error) {
	opt := glamour.WithAutoStyle()
	if style != "" {
		opt = glamour.WithStandardStyle(style)
	}

	r, err := glamour.NewTermRenderer(opt, glamour.WithWordWrap(0))
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}, nil
}

// FormatTrace builds a markdown report of a traced evaluation.
func FormatTrace(expr domain.Expr, value int, trace domain.Trace) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## `%s`\n\n", expr))
	for i, line := range trace {
		sb.WriteString(fmt.Sprintf("%d. `%s`\n", i+1, line))
	}
	sb.WriteString(fmt.Sprintf("\n**Result:** %d\n", value))
	return sb.String()
}
