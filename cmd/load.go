package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/hgrv/partlog"
	"github.com/hgrv/partlog/store"
)

type loadCmd struct {
	id string
}

func (*loadCmd) Name() string     { return "load" }
func (*loadCmd) Synopsis() string { return "replace the catalog with a saved build snapshot" }
func (*loadCmd) Usage() string {
	return `load -id <build>

  Replaces the live catalog wholesale with the parts of a saved build.
  There is no merge and no confirmation: unsaved catalog state is lost, so
  'save' first if it matters.
`
}

func (c *loadCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Build id, or any unique prefix (required)")
}

func (c *loadCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	db, err := OpenBuilds()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening builds database: %v\n", err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	build, err := findBuild(db, c.id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	catalog := partlog.NewCatalog()
	catalog.Replace(build.Parts)

	if err := EncodeCatalogFile(catalog); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving catalog: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Loaded build %q (%d parts) into the catalog.\n", build.Name, len(build.Parts))
	return subcommands.ExitSuccess
}

// findBuild resolves a build id, accepting any unique id prefix.
func findBuild(db *store.DB, id string) (partlog.SavedBuild, error) {
	if id == "" {
		return partlog.SavedBuild{}, fmt.Errorf("build id is required")
	}
	builds, err := db.Builds()
	if err != nil {
		return partlog.SavedBuild{}, err
	}
	var matches []partlog.SavedBuild
	for _, b := range builds {
		if strings.HasPrefix(b.ID, id) {
			matches = append(matches, b)
		}
	}
	switch len(matches) {
	case 0:
		return partlog.SavedBuild{}, fmt.Errorf("no build with id %q", id)
	case 1:
		return matches[0], nil
	default:
		return partlog.SavedBuild{}, fmt.Errorf("build id %q is ambiguous", id)
	}
}
