package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/toukei-tech/toukei/pkg/lang"
)

// NewLanguagesCommand creates the languages subcommand, which lists every
// language the registry can count.
func NewLanguagesCommand() *cobra.Command {
	var rulesFile string

	cmd := &cobra.Command{
		Use:   "languages",
		Short: "List supported languages and their extensions",
		RunE: func(_ *cobra.Command, _ []string) error {
			registry := lang.NewRegistry()

			if rulesFile != "" {
				if err := registry.LoadRulesFile(rulesFile); err != nil {
					return err
				}
			}

			printLanguages(registry, os.Stdout)

			return nil
		},
	}

	cmd.Flags().StringVar(&rulesFile, "rules", "", "YAML file with extra language rules")

	return cmd
}

func printLanguages(registry *lang.Registry, w io.Writer) {
	for _, desc := range registry.Languages() {
		fmt.Fprintf(w, "%-12s %s\n", desc.Name, strings.Join(desc.Extensions, ", "))
	}
}
