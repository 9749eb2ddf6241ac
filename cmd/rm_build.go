package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type rmBuildCmd struct {
	id string
}

func (*rmBuildCmd) Name() string     { return "rm-build" }
func (*rmBuildCmd) Synopsis() string { return "delete a saved build snapshot" }
func (*rmBuildCmd) Usage() string {
	return `rm-build -id <build>

  Deletes exactly one saved build. The other snapshots keep their order and
  content. The live catalog is not touched.
`
}

func (c *rmBuildCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Build id, or any unique prefix (required)")
}

func (c *rmBuildCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if err := db.DeleteBuild(build.ID); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Deleted build %q.\n", build.Name)
	return subcommands.ExitSuccess
}
