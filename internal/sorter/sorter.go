// Package sorter reorders the children of PBXGroup blocks in an Xcode
// project manifest.
//
// Within each group's children list, entries that are not declared in the
// PBXFileReference section (sub-groups, folder references) come first, then
// file references. Both runs are sorted by display name. Every other line is
// passed through unchanged.
package sorter

import (
	"slices"
)

// scanner holds the state of one forward pass over a manifest.
type scanner struct {
	mode     Mode
	prevLine string
	files    fileRegistry
	group    groupAccumulator
	out      []string
}

func newScanner(sizeHint int) *scanner {
	return &scanner{
		mode:  ModeNormal,
		files: make(fileRegistry),
		out:   make([]string, 0, sizeHint),
	}
}

// step consumes one line. The order matters: side effects keyed on the mode
// before the transition, then the transition, then capture keyed on the new mode.
func (s *scanner) step(line string) {
	prevMode := s.mode
	switch {
	case s.mode == ModeFiles:
		if id, err := leadingID(line); err == nil {
			s.files.register(id)
		}
	case s.mode == ModePreGroup && isChildrenOpen(line):
		s.group.clear()
	case s.mode == ModeGroup && isChildrenClose(line):
		s.out = append(s.out, s.group.flush(s.files)...)
		s.group.clear()
	}

	s.mode = nextMode(s.mode, line, s.prevLine)
	s.prevLine = line

	// A children list interrupted by a section or group header keeps its
	// captured lines, unsorted.
	if prevMode == ModeGroup && s.mode != ModeGroup && !isChildrenClose(line) {
		s.out = append(s.out, s.group.pending()...)
		s.group.clear()
	}

	if s.mode == ModeGroup {
		name, nameErr := childName(line)
		id, idErr := leadingID(line)
		if nameErr == nil && idErr == nil {
			s.group.push(entry{name: name, id: id, raw: line})
			return
		}
	}
	s.out = append(s.out, line)
}

// Sort returns the manifest lines with every group's children reordered, and
// whether the result differs from the input.
func Sort(lines []string) ([]string, bool) {
	s := newScanner(len(lines))
	for _, line := range lines {
		s.step(line)
	}
	// A children list left open at end of input is emitted unsorted.
	if s.mode == ModeGroup {
		s.out = append(s.out, s.group.pending()...)
	}
	return s.out, !slices.Equal(lines, s.out)
}
