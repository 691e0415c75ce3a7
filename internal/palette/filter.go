package palette

import (
	"strings"

	"github.com/thesn0wdev/portfolio/internal/content"
)

// Filter returns the commands matching query, preserving their original
// order. A blank query returns commands unchanged. A command matches when its
// title or hint contains the lowercased query, or when its identifier does.
func Filter(query string, commands []content.Command) []content.Command {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return commands
	}
	filtered := make([]content.Command, 0, len(commands))
	for _, cmd := range commands {
		if matches(cmd, q) {
			filtered = append(filtered, cmd)
		}
	}
	return filtered
}

func matches(cmd content.Command, q string) bool {
	if strings.Contains(strings.ToLower(cmd.Title), q) {
		return true
	}
	if cmd.Hint != "" && strings.Contains(strings.ToLower(cmd.Hint), q) {
		return true
	}
	return cmd.ID != content.PanelNone && strings.Contains(string(cmd.ID), q)
}
