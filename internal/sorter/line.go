package sorter

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrChildName is returned when a line does not end with a `/* name */,` child reference.
var ErrChildName = errors.New("child name not found")

// ErrLeadingID is returned when a line does not start with an `<id> /* ` token.
var ErrLeadingID = errors.New("leading id not found")

var (
	preGroupPattern      = regexp.MustCompile(`isa\s=\sPBXGroup;`)
	blockHeaderPattern   = regexp.MustCompile(`/\*\s+.+\s+\*/\s=\s\{$`)
	childrenOpenPattern  = regexp.MustCompile(`children\s=\s\(`)
	childrenClosePattern = regexp.MustCompile(`^\s*\);\s*$`)
	childNamePattern     = regexp.MustCompile(`/\*\s+(.+)\s+\*/,$`)
	fileSectionOpen      = regexp.MustCompile(`/\*\sBegin\sPBXFileReference\ssection\s\*/`)
	fileSectionClose     = regexp.MustCompile(`/\*\sEnd\sPBXFileReference\ssection\s\*/`)
	leadingIDPattern     = regexp.MustCompile(`^\s*(\S+)\s+/\*\s+`)
)

// isPreGroupMarker reports whether the line declares `isa = PBXGroup;`.
func isPreGroupMarker(line string) bool {
	return preGroupPattern.MatchString(line)
}

// hasBlockHeader reports whether the line opens a named block: `... /* Name */ = {`.
func hasBlockHeader(line string) bool {
	return blockHeaderPattern.MatchString(line)
}

func isChildrenOpen(line string) bool {
	return childrenOpenPattern.MatchString(line)
}

func isChildrenClose(line string) bool {
	return childrenClosePattern.MatchString(line)
}

func isFileSectionOpen(line string) bool {
	return fileSectionOpen.MatchString(line)
}

func isFileSectionClose(line string) bool {
	return fileSectionClose.MatchString(line)
}

// childName extracts the display name from a child reference line such as
// `DC3EDF8821556612004B337E /* MainViewController.swift */,`.
func childName(line string) (string, error) {
	m := childNamePattern.FindStringSubmatch(line)
	if m == nil {
		return "", fmt.Errorf("%w: %q", ErrChildName, line)
	}
	return m[1], nil
}

// leadingID extracts the object identifier that starts the line. An error
// means the line has no `<id> /* ` prefix.
func leadingID(line string) (string, error) {
	m := leadingIDPattern.FindStringSubmatch(line)
	if m == nil {
		return "", fmt.Errorf("%w: %q", ErrLeadingID, line)
	}
	return m[1], nil
}
