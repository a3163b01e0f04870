package llm

import "testing"

func defaultPolicy() SelectionPolicy {
	return PolicyFromPatterns([]string{"1.5+pro", "1.5+flash", "pro"}, "gemini-1.5-flash")
}

func catalogOf(ids ...string) []Model {
	models := make([]Model, 0, len(ids))
	for _, id := range ids {
		models = append(models, Model{ID: id, Generation: true})
	}
	return models
}

func TestResolvePreferenceTiers(t *testing.T) {
	tests := []struct {
		name     string
		override string
		catalog  []Model
		want     string
	}{
		{
			name:    "top tier wins over later catalog entries",
			catalog: catalogOf("models/gemini-1.5-pro", "models/gemini-1.5-flash"),
			want:    "gemini-1.5-pro",
		},
		{
			name:    "lower tier matches when top tiers absent",
			catalog: catalogOf("models/gemini-1.0-pro"),
			want:    "gemini-1.0-pro",
		},
		{
			name:    "empty catalog falls back to default",
			catalog: nil,
			want:    "gemini-1.5-flash",
		},
		{
			name:     "override is absolute",
			override: "my-pinned-model",
			catalog:  catalogOf("models/gemini-1.5-pro"),
			want:     "my-pinned-model",
		},
		{
			name:     "override wins even with empty catalog",
			override: "models/custom",
			catalog:  nil,
			want:     "models/custom", // returned unchanged, no prefix strip
		},
		{
			name:    "no rule match takes first catalog entry",
			catalog: catalogOf("models/chat-bison", "models/text-bison"),
			want:    "chat-bison",
		},
		{
			name:    "catalog order breaks ties within a rule",
			catalog: catalogOf("models/gemini-1.5-flash", "models/gemini-1.5-flash-8b"),
			want:    "gemini-1.5-flash",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.override, tt.catalog, defaultPolicy())
			if got != tt.want {
				t.Errorf("Resolve() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveDeterministic(t *testing.T) {
	catalog := catalogOf("models/gemini-1.5-flash", "models/gemini-1.5-pro", "models/gemini-1.0-pro")
	policy := defaultPolicy()

	first := Resolve("", catalog, policy)
	for i := 0; i < 100; i++ {
		if got := Resolve("", catalog, policy); got != first {
			t.Fatalf("Resolve() not deterministic: got %q then %q", first, got)
		}
	}
}

func TestResolveRuleOrderBeatsCatalogOrder(t *testing.T) {
	// flash appears first in the catalog, but the pro rule is ranked higher
	catalog := catalogOf("models/gemini-1.5-flash", "models/gemini-1.5-pro")
	got := Resolve("", catalog, defaultPolicy())
	if got != "gemini-1.5-pro" {
		t.Errorf("Resolve() = %q, want %q", got, "gemini-1.5-pro")
	}
}

func TestResolveDefaultPrefixStripped(t *testing.T) {
	policy := PolicyFromPatterns(nil, "models/gemini-1.5-flash")
	got := Resolve("", nil, policy)
	if got != "gemini-1.5-flash" {
		t.Errorf("Resolve() = %q, want prefix stripped", got)
	}
}

func TestPolicyFromPatterns(t *testing.T) {
	policy := PolicyFromPatterns([]string{"1.5+pro", "flash"}, "fallback-model")

	if len(policy.Rules) != 2 {
		t.Fatalf("expected 2 rules, got %d", len(policy.Rules))
	}
	if policy.Default != "fallback-model" {
		t.Errorf("Default = %q, want %q", policy.Default, "fallback-model")
	}

	if !policy.Rules[0].Match(Model{ID: "models/gemini-1.5-pro"}) {
		t.Error("rule 1.5+pro should match gemini-1.5-pro")
	}
	if policy.Rules[0].Match(Model{ID: "models/gemini-1.5-flash"}) {
		t.Error("rule 1.5+pro should not match gemini-1.5-flash")
	}
	if !policy.Rules[1].Match(Model{ID: "models/gemini-2.0-flash"}) {
		t.Error("rule flash should match gemini-2.0-flash")
	}
}

func TestStripModelPrefix(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"models/gemini-1.5-pro", "gemini-1.5-pro"},
		{"gemini-1.5-pro", "gemini-1.5-pro"},
		{"", ""},
		{"models/", ""},
	}
	for _, tt := range tests {
		if got := StripModelPrefix(tt.in); got != tt.want {
			t.Errorf("StripModelPrefix(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
