package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/delega-dev/delega/internal/config"
)

var specialistsFile string

var specialistsCmd = &cobra.Command{
	Use:   "specialists",
	Short: "List the available specialists",
	Long: `List the specialists a plan may delegate to: the built-ins plus any
definitions loaded from a YAML file given with --specialists.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		// Listing never performs; no completer is needed.
		registry, err := buildRegistry(nil, cfg, specialistsFile)
		if err != nil {
			return err
		}

		for _, d := range registry.DescribeAll() {
			fmt.Printf("%s\n    %s\n", color.New(color.Bold).Sprint(d.Name), d.Description)
		}
		return nil
	},
}

func init() {
	specialistsCmd.Flags().StringVar(&specialistsFile, "specialists", "", "YAML file with additional specialist definitions")
}
