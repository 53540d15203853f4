package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/zoro11031/homelab-coreos-minipc/file-create/internal/config"
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Print module documentation",
	Long:  `Print the module's options, check mode support, examples, and return values as YAML.`,
	RunE:  showDocs,
}

func init() {
	rootCmd.AddCommand(docsCmd)
}

func showDocs(cmd *cobra.Command, args []string) error {
	out, err := yaml.Marshal(config.Documentation())
	if err != nil {
		return fmt.Errorf("failed to encode documentation: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
