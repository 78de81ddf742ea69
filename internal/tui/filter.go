package tui

import "github.com/sahilm/fuzzy"

// rowSource adapts rows to the fuzzy matcher
type rowSource []Row

func (r rowSource) String(i int) string { return r[i].Title }
func (r rowSource) Len() int            { return len(r) }

// filterRows narrows rows to those fuzzy-matching the query, best match
// first. An empty query returns rows unchanged.
func filterRows(rows []Row, query string) []Row {
	if query == "" {
		return rows
	}
	matches := fuzzy.FindFrom(query, rowSource(rows))
	filtered := make([]Row, 0, len(matches))
	for _, m := range matches {
		filtered = append(filtered, rows[m.Index])
	}
	return filtered
}
