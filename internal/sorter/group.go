package sorter

import (
	"sort"
)

// entry is a captured child line of a group.
type entry struct {
	name string
	id   string
	raw  string
}

// groupAccumulator collects the children of the group being scanned.
type groupAccumulator struct {
	entries []entry
}

func (g *groupAccumulator) clear() {
	g.entries = g.entries[:0]
}

func (g *groupAccumulator) push(e entry) {
	g.entries = append(g.entries, e)
}

// pending returns the captured lines in capture order.
func (g *groupAccumulator) pending() []string {
	out := make([]string, 0, len(g.entries))
	for _, e := range g.entries {
		out = append(out, e.raw)
	}
	return out
}

// flush returns the captured lines ordered by name, with children that are
// not file references first and file references second.
func (g *groupAccumulator) flush(files fileRegistry) []string {
	sorted := make([]entry, len(g.entries))
	copy(sorted, g.entries)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].name < sorted[j].name
	})

	out := make([]string, 0, len(sorted))
	for _, e := range sorted {
		if !files.contains(e.id) {
			out = append(out, e.raw)
		}
	}
	for _, e := range sorted {
		if files.contains(e.id) {
			out = append(out, e.raw)
		}
	}
	return out
}
