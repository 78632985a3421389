package commands

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/tjun/xcodesort/internal/config"
	"github.com/tjun/xcodesort/internal/manifest"
	"github.com/tjun/xcodesort/internal/sorter"
	"github.com/urfave/cli/v3"
)

// stdinPath is the argument that selects stdin as the manifest source.
const stdinPath = "-"

// flags defines the CLI flags for the xcodesort command.
var flags = []cli.Flag{
	&cli.BoolFlag{
		Name:    "stdout",
		Aliases: []string{"o"},
		Usage:   "Print the sorted manifest to stdout instead of replacing it",
	},
	&cli.BoolFlag{
		Name:  "dry-run",
		Usage: "Exit with non-zero status if changes would be made",
	},
	&cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Value:   config.DefaultFile,
		Usage:   "Read settings from the HCL config `FILE` (skipped if missing)",
	},
	&cli.StringFlag{
		Name:  "manifest-name",
		Usage: "Manifest file `NAME` to look up when the path is a directory",
	},
}

// GetFlags returns the flags for the xcodesort command.
func GetFlags() []cli.Flag {
	return flags
}

// XcodesortAction sorts the group children of one Xcode project manifest.
// The single argument is a .xcodeproj directory, a project.pbxproj file, or
// "-" for stdin.
func XcodesortAction(ctx context.Context, cmd *cli.Command) error {
	// Extract the positional arguments from the command
	args := cmd.Args().Slice()
	if len(args) == 0 {
		fmt.Fprintf(errWriter(cmd), "Usage: %s path/to/xcodeproj or pbxproj\n", cmd.Name)
		return cli.Exit("", 1)
	}

	// Check if anything after the path looks like a flag
	for _, arg := range args[1:] {
		if strings.HasPrefix(arg, "-") && arg != stdinPath {
			return cli.Exit(fmt.Sprintf("Error: Flag '%s' found after the path argument. Please place flags before the path.", arg), 1)
		}
	}
	if len(args) > 1 {
		return cli.Exit(fmt.Sprintf("Error: expected exactly one path, got %d.", len(args)), 1)
	}

	// Config file first, then flags given on the command line
	cfg, err := loadConfig(cmd)
	if err != nil {
		log.Printf("Error loading config: %v", err)
		return cli.Exit("Encountered errors during processing.", 2)
	}

	// Resolve a directory argument to the manifest inside it, or read stdin
	path, lines, err := readManifest(args[0], cfg.ManifestName)
	if err != nil {
		log.Printf("Error reading %s: %v", path, err)
		return cli.Exit("Encountered errors during processing.", 2)
	}

	log.Printf("Processing: %s", path)
	sorted, changed := sorter.Sort(lines)

	// Dry run reports, stdout prints, otherwise the manifest is replaced
	switch {
	case cfg.DryRun:
		if changed {
			log.Printf("File %s would be changed.", path)
			return cli.Exit("Changes would be made.", 1)
		}
	case cfg.Stdout || args[0] == stdinPath:
		if err := manifest.WriteLines(os.Stdout, sorted); err != nil {
			log.Printf("Error writing to stdout for %s: %v", path, err)
			return cli.Exit("Encountered errors during processing.", 2)
		}
	default:
		// Rewritten even when unchanged so line endings are normalized.
		if err := manifest.Replace(path, sorted); err != nil {
			log.Printf("Error writing file %s: %v", path, err)
			return cli.Exit("Encountered errors during processing.", 2)
		}
		if changed {
			log.Printf("Formatted %s", path)
		} else {
			log.Printf("No changes for %s", path)
		}
	}

	return nil
}

// loadConfig reads the config file and applies flags given on the command line.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, err
	}
	if cmd.IsSet("dry-run") {
		cfg.DryRun = cmd.Bool("dry-run")
	}
	if cmd.IsSet("stdout") {
		cfg.Stdout = cmd.Bool("stdout")
	}
	if name := cmd.String("manifest-name"); name != "" {
		cfg.ManifestName = name
	}
	return cfg, nil
}

// readManifest resolves arg and reads its lines. The returned path is the
// resolved manifest path, or "<stdin>".
func readManifest(arg, manifestName string) (string, []string, error) {
	if arg == stdinPath {
		lines, err := manifest.ReadLines(os.Stdin)
		return "<stdin>", lines, err
	}
	path := manifest.Resolve(arg, manifestName)
	lines, err := manifest.Load(path)
	return path, lines, err
}

func errWriter(cmd *cli.Command) io.Writer {
	if w := cmd.Root().ErrWriter; w != nil {
		return w
	}
	return os.Stderr
}
