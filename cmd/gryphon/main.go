// Command gryphon is the CLI front end for the emitter: an "emit"
// subcommand for one source/AST file and a "batch" subcommand for a
// directory of them. Logging goes to stderr only, so stdout stays
// clean for the emitted TargetLang source.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	log.SetFlags(0)
	log.SetOutput(os.Stderr)

	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "internal error: %v\n", r)
			os.Exit(1)
		}
	}()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "gryphon",
		Short:         "Translate SourceLang ASTs to TargetLang source",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("config", "", "path to gryphon.yaml (default: discovered by walking up from the input)")
	root.AddCommand(newEmitCmd())
	root.AddCommand(newBatchCmd())
	return root
}
