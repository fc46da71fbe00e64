package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

// exitErr carries a specific process exit code up to main.
type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := newRootCmd(cfg).Execute(); err != nil {
		var ee *exitErr
		if errors.As(err, &ee) {
			if ee.msg != "" {
				fmt.Fprintln(os.Stderr, ee.msg)
			}
			os.Exit(ee.code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(cfg Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "msgfilter",
		Short:         "Run the marketplace chat filters on text from arguments or stdin",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.AddCommand(
		newRedactCmd(cfg),
		newCheckCmd(),
		newLiveCmd(),
		newLegacyCmd(),
		newRulesCmd(),
	)
	return root
}
