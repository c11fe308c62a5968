package config

import (
	"flag"
	"os"

	"github.com/portfolioimane/storefront-cli/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the storefront API (default from Config)
//	-p string   base URL of the card processor API (default from Config)
//	-k string   processor publishable key (default from Config)
//	-d string   path of the local session database (default from Config)
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-p", "-k", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the storefront API")
	fs.StringVar(&cfg.ProcessorBaseURL, "p", cfg.ProcessorBaseURL, "base URL of the card processor API")
	fs.StringVar(&cfg.ProcessorKey, "k", cfg.ProcessorKey, "processor publishable key")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the local session database")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
