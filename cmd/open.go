package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/google/subcommands"
	"github.com/hgrv/partlog"
)

type openCmd struct {
	listing string
	print   bool
}

func (*openCmd) Name() string     { return "open" }
func (*openCmd) Synopsis() string { return "open a listing's URL in the browser" }
func (*openCmd) Usage() string {
	return `open -listing <id> [-print]

  Opens a listing's URL in the system browser. The URL is sanitized first:
  only http and https are ever handed to the browser.
`
}

func (c *openCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.listing, "listing", "", "Listing id, or any unique prefix (required)")
	f.BoolVar(&c.print, "print", false, "Print the URL instead of opening it")
}

func (c *openCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	catalog, err := DecodeCatalogFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading catalog: %v\n", err)
		return subcommands.ExitFailure
	}

	_, listing, err := findListing(catalog, c.listing)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	u, err := partlog.SanitizeURL(listing.URL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: refusing to open: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.print {
		fmt.Println(u)
		return subcommands.ExitSuccess
	}

	if err := openBrowser(u); err != nil {
		fmt.Fprintf(os.Stderr, "Error opening browser: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("✅ Opened %s.\n", u)
	return subcommands.ExitSuccess
}

// openBrowser hands a sanitized URL to the platform's URL opener.
func openBrowser(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		return exec.Command("xdg-open", url).Start()
	}
}
