package sorter

// Mode is the scanning context of the current line.
type Mode int

const (
	// ModeNormal is any content outside the file-reference section and group children.
	ModeNormal Mode = iota
	// ModeFiles is inside the PBXFileReference section.
	ModeFiles
	// ModePreGroup follows a group header, before its children list opens.
	ModePreGroup
	// ModeGroup is inside a group's children list.
	ModeGroup
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "Normal"
	case ModeFiles:
		return "Files"
	case ModePreGroup:
		return "PreGroup"
	case ModeGroup:
		return "Group"
	default:
		return "Unknown"
	}
}

// nextMode computes the mode after line. The first matching rule wins.
func nextMode(mode Mode, line, prevLine string) Mode {
	switch {
	case isFileSectionOpen(line):
		return ModeFiles
	case isFileSectionClose(line):
		return ModeNormal
	case isPreGroupMarker(line):
		// A marker without a header on the line above is not a group we track.
		if hasBlockHeader(prevLine) {
			return ModePreGroup
		}
		return mode
	case mode == ModePreGroup && isChildrenOpen(line):
		return ModeGroup
	case mode == ModeGroup && isChildrenClose(line):
		return ModeNormal
	default:
		return mode
	}
}
