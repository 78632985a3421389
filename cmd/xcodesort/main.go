// Command xcodesort sorts the children of every group in an Xcode project
// manifest: sub-groups and folder references first, then file references,
// each alphabetically.
//
// Usage:
//
//	xcodesort [--dry-run] [--stdout] path/to/App.xcodeproj
//	xcodesort path/to/project.pbxproj
//	xcodesort - < project.pbxproj
package main

import (
	"context"
	"log"
	"os"

	"github.com/tjun/xcodesort/internal/commands"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:      "xcodesort",
		Usage:     "Sort group children in an Xcode project manifest",
		ArgsUsage: "path/to/xcodeproj or pbxproj",
		Flags:     commands.GetFlags(),
		Action:    commands.XcodesortAction,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
