package specialist

import (
	"os"
	"path/filepath"
	"testing"
)

func writeDefs(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "specialists.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write defs: %v", err)
	}
	return path
}

func TestLoadDefinitions(t *testing.T) {
	path := writeDefs(t, `
specialists:
  - name: Legal
    description: Reviews copy for compliance issues
    role_prompt: You are a legal reviewer.
    temperature: 0.2
  - name: SEO
    description: Optimizes copy for search
    role_prompt: You are an SEO specialist.
`)

	defs, err := LoadDefinitions(path)
	if err != nil {
		t.Fatalf("LoadDefinitions failed: %v", err)
	}

	if len(defs) != 2 {
		t.Fatalf("Expected 2 definitions, got %d", len(defs))
	}
	if defs[0].Name != "Legal" {
		t.Errorf("defs[0].Name = %q, want Legal", defs[0].Name)
	}
	if defs[0].Temperature == nil || *defs[0].Temperature != 0.2 {
		t.Errorf("defs[0].Temperature = %v, want 0.2", defs[0].Temperature)
	}
	if defs[1].Temperature != nil {
		t.Errorf("defs[1].Temperature = %v, want unset", defs[1].Temperature)
	}
}

func TestLoadDefinitions_MissingName(t *testing.T) {
	path := writeDefs(t, `
specialists:
  - description: no name here
    role_prompt: prompt
`)

	_, err := LoadDefinitions(path)
	if err == nil {
		t.Fatal("Expected error for definition without name")
	}
}

func TestLoadDefinitions_MissingRolePrompt(t *testing.T) {
	path := writeDefs(t, `
specialists:
  - name: Legal
    description: no prompt
`)

	_, err := LoadDefinitions(path)
	if err == nil {
		t.Fatal("Expected error for definition without role_prompt")
	}
}

func TestLoadDefinitions_FileMissing(t *testing.T) {
	_, err := LoadDefinitions(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
}

func TestFromDefinitions_AppliesDefaults(t *testing.T) {
	temp := 0.1
	defs := []Definition{
		{Name: "Legal", RolePrompt: "You are a legal reviewer.", Temperature: &temp},
		{Name: "SEO", RolePrompt: "You are an SEO specialist."},
	}

	specialists := FromDefinitions(defs, &mockCompleter{}, DefaultsConfig{Temperature: 0.7})
	if len(specialists) != 2 {
		t.Fatalf("Expected 2 specialists, got %d", len(specialists))
	}

	legal := specialists[0].(*Role)
	if legal.temperature != 0.1 {
		t.Errorf("Legal temperature = %g, want 0.1 from definition", legal.temperature)
	}
	seo := specialists[1].(*Role)
	if seo.temperature != 0.7 {
		t.Errorf("SEO temperature = %g, want 0.7 from defaults", seo.temperature)
	}
}
