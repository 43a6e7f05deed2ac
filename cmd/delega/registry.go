package main

import (
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"

	"github.com/delega-dev/delega/internal/config"
	"github.com/delega-dev/delega/internal/specialist"
)

// buildRegistry assembles the specialist registry: built-ins first, then
// any user-defined specialists from the given YAML file.
func buildRegistry(completer specialist.Completer, cfg *config.Config, defsPath string) (*specialist.Registry, error) {
	defaults := specialist.DefaultsConfig{
		Model:       anthropic.Model(cfg.Defaults.Model),
		Temperature: cfg.Defaults.SpecialistTemperature,
	}

	specialists := specialist.Defaults(completer, defaults)

	if defsPath != "" {
		defs, err := specialist.LoadDefinitions(defsPath)
		if err != nil {
			return nil, err
		}
		specialists = append(specialists, specialist.FromDefinitions(defs, completer, defaults)...)
	}

	registry, err := specialist.NewRegistry(specialists...)
	if err != nil {
		return nil, fmt.Errorf("build registry: %w", err)
	}
	return registry, nil
}
