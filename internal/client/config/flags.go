package config

import (
	"flag"
	"os"

	"github.com/ezilbeari/pennywise/internal/flagx"
)

// parseFlags populates client Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-s string   server base URL (e.g., "http://localhost:5050")
//	-d string   state directory for locally persisted client data
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-s", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.ServerEndpointAddr, "s", config.ServerEndpointAddr, "server base URL")
	fs.StringVar(&config.StateDir, "d", config.StateDir, "client state directory")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
