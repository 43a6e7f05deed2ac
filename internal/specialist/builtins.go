package specialist

import "github.com/anthropics/anthropic-sdk-go"

// Built-in specialist role prompts. Each framing is fixed for the lifetime
// of the specialist instance.
const (
	researchPrompt = `You are a Research specialist. Your job is to gather relevant facts, data, and context about the subject or question you are assigned. For the given subtask, draw on general knowledge (no web access) and provide a concise summary, noting any important considerations.`

	copywritingPrompt = `You are a Copywriting specialist. You write engaging and persuasive text for marketing and communications. When given a subtask, produce high-quality copy tailored to the specified audience and objective. Emphasize clarity, benefits, and calls to action where appropriate.`

	adDesignPrompt = `You are an Ad Design specialist. You create creative advertising concepts, slogans, headlines, and campaign ideas. For the assigned subtask, deliver concise and imaginative advertising ideas that align with the brand and target audience.`
)

// DefaultsConfig configures the built-in specialist set.
type DefaultsConfig struct {
	// Model overrides the client default for all built-ins when non-empty.
	Model anthropic.Model
	// Temperature is the sampling temperature for all built-ins.
	Temperature float64
}

// Defaults returns the built-in specialists in registration order:
// Research, Copywriting, AdDesign.
func Defaults(completer Completer, cfg DefaultsConfig) []Specialist {
	return []Specialist{
		NewRole(RoleConfig{
			Name:        "Research",
			Description: "Gathers facts, data, and context and summarizes findings",
			RolePrompt:  researchPrompt,
			Model:       cfg.Model,
			Temperature: cfg.Temperature,
			Completer:   completer,
		}),
		NewRole(RoleConfig{
			Name:        "Copywriting",
			Description: "Writes persuasive marketing copy, product descriptions, and taglines",
			RolePrompt:  copywritingPrompt,
			Model:       cfg.Model,
			Temperature: cfg.Temperature,
			Completer:   completer,
		}),
		NewRole(RoleConfig{
			Name:        "AdDesign",
			Description: "Creates advertising concepts, slogans, headlines, and campaign ideas",
			RolePrompt:  adDesignPrompt,
			Model:       cfg.Model,
			Temperature: cfg.Temperature,
			Completer:   completer,
		}),
	}
}
