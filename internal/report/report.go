// Package report prints the diagnostics of a run: the resolved
// configuration, the rule table and generation 0.
package report

import (
	"fmt"
	"io"
	"strings"

	"eca/internal/core"
	"eca/internal/rule"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	header lipgloss.Style
	group  lipgloss.Style
	label  lipgloss.Style
}

func newStyles(w io.Writer) styles {
	lg := lipgloss.NewRenderer(w)
	return styles{
		header: lg.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ccff")),
		group:  lg.NewStyle().Bold(true),
		label:  lg.NewStyle().Foreground(lipgloss.Color("#888899")),
	}
}

// Print writes the parameters of p, the rule table and generation 0.
func Print(w io.Writer, p core.ParameterProvider, table *rule.Table, gen0 []rule.State) error {
	st := newStyles(w)
	var b strings.Builder
	writeParameters(&b, st, p.Parameters())
	writeRule(&b, st, table)
	b.WriteString(st.header.Render("First Generation"))
	b.WriteByte('\n')
	fmt.Fprintf(&b, "  %s %s\n", st.label.Render("Cells:"), rule.EncodeKey(gen0...))
	_, err := io.WriteString(w, b.String())
	return err
}

// PrintRule writes the rule table alone.
func PrintRule(w io.Writer, table *rule.Table) error {
	var b strings.Builder
	writeRule(&b, newStyles(w), table)
	_, err := io.WriteString(w, b.String())
	return err
}

func writeParameters(b *strings.Builder, st styles, snap core.ParameterSnapshot) {
	b.WriteString(st.header.Render("Input Conditions"))
	b.WriteByte('\n')
	for _, g := range snap.Groups {
		fmt.Fprintf(b, "  %s\n", st.group.Render(g.Name))
		for _, p := range g.Params {
			fmt.Fprintf(b, "    %s %s", st.label.Render(p.Label+":"), p.Value)
			if p.Description != "" {
				fmt.Fprintf(b, " (%s)", p.Description)
			}
			b.WriteByte('\n')
		}
	}
}

func writeRule(b *strings.Builder, st styles, table *rule.Table) {
	b.WriteString(st.header.Render(fmt.Sprintf("Rule %d", table.Rule())))
	b.WriteByte('\n')

	digits := table.Digits()
	fmt.Fprintf(b, "  %s %s\n", st.label.Render(fmt.Sprintf("Base-%d representation:", table.States())), digits)
	fmt.Fprintf(b, "  %s %s\n", st.label.Render("Reversed:"), reverse(digits))

	expected, err := rule.KeyCount(table.States(), table.Width()-1)
	if err != nil {
		expected = 0
	}
	fmt.Fprintf(b, "  %s %d (expected %d)\n", st.label.Render("Neighborhoods:"), table.Len(), expected)
	fmt.Fprintf(b, "  %s\n", st.label.Render("Neighborhood -> next state:"))
	for _, e := range table.Entries() {
		fmt.Fprintf(b, "    %s: %d\n", e.Key, e.Next)
	}
}

func reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}
