package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"coachdiag/internal/diagnosis"
	"coachdiag/internal/model"
)

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Work with the built-in question catalog",
	}
	cmd.AddCommand(newCatalogValidateCmd(), newCatalogShowCmd())
	return cmd
}

func newCatalogValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Report authoring errors in the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			issues := diagnosis.DefaultCatalog().Validate()
			out := cmd.OutOrStdout()
			if len(issues) == 0 {
				fmt.Fprintln(out, "catalog OK")
				return nil
			}
			for _, issue := range issues {
				fmt.Fprintln(out, "  -", issue.String())
			}
			return fmt.Errorf("catalog has %d issue(s)", len(issues))
		},
	}
}

func newCatalogShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print questions, follow-up conditions and type formulas",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := diagnosis.DefaultCatalog()
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, "Core questions:")
			for i, q := range c.Core() {
				fmt.Fprintf(out, "  %d. %s  %s\n", i+1, q.ID, q.Text)
			}

			fmt.Fprintln(out, "Follow-ups (priority order):")
			for _, q := range c.Followups() {
				fmt.Fprintf(out, "  - %s  when %s\n", q.ID, describeCondition(q.Condition))
			}

			fmt.Fprintln(out, "Types:")
			for _, t := range c.Types() {
				fmt.Fprintf(out, "  - %s (%s) = %s\n", t.ID, t.DisplayName, describeWeights(t.Formula))
			}
			return nil
		},
	}
}

func describeCondition(cond *model.Condition) string {
	if cond == nil {
		return "never"
	}

	var parts []string
	if cond.ScoreGap != nil {
		parts = append(parts, fmt.Sprintf("top-two gap <= %g", cond.ScoreGap.Max))
	}
	dims := make([]string, 0, len(cond.Ranges))
	for dim := range cond.Ranges {
		dims = append(dims, dim)
	}
	sort.Strings(dims)
	for _, dim := range dims {
		r := cond.Ranges[dim]
		switch {
		case r.Min != nil && r.Max != nil:
			parts = append(parts, fmt.Sprintf("%g <= %s <= %g", *r.Min, dim, *r.Max))
		case r.Min != nil:
			parts = append(parts, fmt.Sprintf("%s >= %g", dim, *r.Min))
		case r.Max != nil:
			parts = append(parts, fmt.Sprintf("%s <= %g", dim, *r.Max))
		}
	}
	if len(parts) == 0 {
		return "always"
	}
	return strings.Join(parts, " and ")
}

func describeWeights(w model.ScoreWeights) string {
	dims := make([]string, 0, len(w))
	for dim := range w {
		dims = append(dims, dim)
	}
	sort.Strings(dims)

	terms := make([]string, len(dims))
	for i, dim := range dims {
		terms[i] = fmt.Sprintf("%g*%s", w[dim], dim)
	}
	return strings.Join(terms, " + ")
}
