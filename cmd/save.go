package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type saveCmd struct {
	name string
	day  string
}

func (*saveCmd) Name() string     { return "save" }
func (*saveCmd) Synopsis() string { return "save the current catalog as a named build snapshot" }
func (*saveCmd) Usage() string {
	return `save -name <name> [-d <date>]

  Snapshots the whole current catalog under a name. Snapshots are immutable;
  later catalog changes never touch them. An empty name is refused and
  nothing is written.
`
}

func (c *saveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Build name (required)")
	f.StringVar(&c.day, "d", "", "Date of the snapshot (defaults to today)")
}

func (c *saveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseDay(c.day)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	catalog, err := DecodeCatalogFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading catalog: %v\n", err)
		return subcommands.ExitFailure
	}

	db, err := OpenBuilds()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening builds database: %v\n", err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	build, err := db.SaveBuild(c.name, on, catalog.Parts())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	fmt.Printf("✅ Saved build %q (%d parts) as %s.\n", build.Name, len(build.Parts), build.ID)
	return subcommands.ExitSuccess
}
