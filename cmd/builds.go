package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/hgrv/partlog/renderer"
)

type buildsCmd struct{}

func (*buildsCmd) Name() string     { return "builds" }
func (*buildsCmd) Synopsis() string { return "list all saved build snapshots" }
func (*buildsCmd) Usage() string {
	return `builds

  Lists every saved build with its id, name, date, part count and total
  cost, in the order they were saved.
`
}

func (c *buildsCmd) SetFlags(f *flag.FlagSet) {}

func (c *buildsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	db, err := OpenBuilds()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening builds database: %v\n", err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	builds, err := db.Builds()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading builds: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.BuildsMarkdown(renderer.NewBuildsReport(builds)))
	return subcommands.ExitSuccess
}
