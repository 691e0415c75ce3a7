package main

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/spf13/cobra"

	"github.com/thesn0wdev/portfolio/internal/content"
	"github.com/thesn0wdev/portfolio/internal/format/table"
	"github.com/thesn0wdev/portfolio/internal/palette"
)

func commandsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "commands [query]",
		Short: "Print the palette entries matching a query",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := content.Default()
			if err != nil {
				return err
			}
			return writeLines(cmd.OutOrStdout(), commandLines(strings.Join(args, " "), data.Commands))
		},
	}
}

func commandLines(query string, commands []content.Command) []string {
	matches := palette.Filter(query, commands)
	if len(matches) == 0 {
		return []string{"No results"}
	}
	rows := make([][]string, len(matches))
	for i, c := range matches {
		rows[i] = []string{string(c.ID), c.Title, c.Hint}
	}
	return table.Format(rows, nil)
}

func projectsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "projects [query]",
		Short: "List projects, optionally fuzzy-matching names and tags",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := content.Default()
			if err != nil {
				return err
			}
			return writeLines(cmd.OutOrStdout(), projectLines(strings.Join(args, " "), data.Projects))
		},
	}
}

// projectLines ranks projects by fuzzy distance to query. An empty query keeps
// the original order.
func projectLines(query string, projects []content.Project) []string {
	selected := projects
	if q := strings.TrimSpace(query); q != "" {
		targets := make([]string, len(projects))
		for i, p := range projects {
			targets[i] = p.Name + " " + strings.Join(p.Tags, " ")
		}
		ranks := fuzzy.RankFindNormalizedFold(q, targets)
		sort.Stable(ranks)
		selected = make([]content.Project, 0, len(ranks))
		for _, r := range ranks {
			selected = append(selected, projects[r.OriginalIndex])
		}
	}
	if len(selected) == 0 {
		return []string{"No results"}
	}
	rows := make([][]string, len(selected))
	for i, p := range selected {
		link := p.Link
		if !p.HasLink() {
			link = "-"
		}
		rows[i] = []string{p.Name, strings.Join(p.Tags, ", "), link}
	}
	return table.Format(rows, nil)
}
