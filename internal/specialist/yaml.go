package specialist

import (
	"fmt"
	"os"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"gopkg.in/yaml.v3"
)

// Definition is a user-supplied specialist loaded from a YAML file.
type Definition struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	RolePrompt  string   `yaml:"role_prompt"`
	Model       string   `yaml:"model"`
	Temperature *float64 `yaml:"temperature"`
}

// Validate checks that the definition has the required fields.
func (d Definition) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("specialist definition missing name")
	}
	if strings.TrimSpace(d.RolePrompt) == "" {
		return fmt.Errorf("specialist definition %q missing role_prompt", d.Name)
	}
	return nil
}

// definitionsFile is the YAML document layout:
//
//	specialists:
//	  - name: Legal
//	    description: Reviews copy for compliance issues
//	    role_prompt: You are a legal reviewer...
//	    temperature: 0.2
type definitionsFile struct {
	Specialists []Definition `yaml:"specialists"`
}

// LoadDefinitions reads and validates specialist definitions from a YAML file.
func LoadDefinitions(path string) ([]Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read specialist definitions %s: %w", path, err)
	}

	var file definitionsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode specialist definitions %s: %w", path, err)
	}

	for i, def := range file.Specialists {
		if err := def.Validate(); err != nil {
			return nil, fmt.Errorf("%s: entry %d: %w", path, i, err)
		}
	}

	return file.Specialists, nil
}

// FromDefinitions builds specialists from definitions, applying the given
// defaults for model and temperature where a definition leaves them unset.
func FromDefinitions(defs []Definition, completer Completer, cfg DefaultsConfig) []Specialist {
	specialists := make([]Specialist, 0, len(defs))
	for _, def := range defs {
		model := cfg.Model
		if def.Model != "" {
			model = anthropic.Model(def.Model)
		}
		temp := cfg.Temperature
		if def.Temperature != nil {
			temp = *def.Temperature
		}
		specialists = append(specialists, NewRole(RoleConfig{
			Name:        strings.TrimSpace(def.Name),
			Description: def.Description,
			RolePrompt:  def.RolePrompt,
			Model:       model,
			Temperature: temp,
			Completer:   completer,
		}))
	}
	return specialists
}
