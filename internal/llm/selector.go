package llm

import "strings"

// modelPrefix is the provider namespace some catalogs prepend to ids.
const modelPrefix = "models/"

// PreferenceRule matches candidate models. Rules are configuration data:
// the selector only evaluates them in order.
type PreferenceRule struct {
	Name  string
	Match func(Model) bool
}

// SelectionPolicy is an ordered set of preference rules plus the
// hardcoded fallback used when the catalog is empty.
type SelectionPolicy struct {
	Rules   []PreferenceRule
	Default string
}

// PolicyFromPatterns builds a policy from config patterns. Each pattern
// is a '+'-joined set of substrings that must all appear in a candidate
// id, e.g. "1.5+pro" matches "models/gemini-1.5-pro".
func PolicyFromPatterns(patterns []string, fallback string) SelectionPolicy {
	rules := make([]PreferenceRule, 0, len(patterns))
	for _, pat := range patterns {
		subs := strings.Split(pat, "+")
		rules = append(rules, PreferenceRule{
			Name:  pat,
			Match: matchAllSubstrings(subs),
		})
	}
	return SelectionPolicy{Rules: rules, Default: fallback}
}

func matchAllSubstrings(subs []string) func(Model) bool {
	return func(m Model) bool {
		for _, sub := range subs {
			if !strings.Contains(m.ID, sub) {
				return false
			}
		}
		return true
	}
}

// Resolve deterministically picks exactly one model id.
//
// An explicit override is returned unchanged: operator intent is
// absolute and is not validated against the catalog. Otherwise the
// first rule that matches any catalog entry wins, ties broken by
// catalog enumeration order; with no rule match the first entry is
// taken, and with an empty catalog the policy fallback. Ids chosen
// from the catalog or fallback are stripped of the "models/" prefix.
func Resolve(override string, catalog []Model, policy SelectionPolicy) string {
	if override != "" {
		return override
	}

	if len(catalog) == 0 {
		return StripModelPrefix(policy.Default)
	}

	for _, rule := range policy.Rules {
		for _, m := range catalog {
			if rule.Match(m) {
				return StripModelPrefix(m.ID)
			}
		}
	}

	return StripModelPrefix(catalog[0].ID)
}

// StripModelPrefix removes the leading "models/" namespace segment.
func StripModelPrefix(id string) string {
	return strings.TrimPrefix(id, modelPrefix)
}
