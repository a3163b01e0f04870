// Package crypto provides credential display hygiene. API keys are
// injected from the environment and never persisted, but they do pass
// through logs and the status endpoint, which must only ever see a
// masked form.
package crypto

// MaskAPIKey returns a masked version of the API key for display (e.g., "sk-...abc123")
func MaskAPIKey(apiKey string) string {
	if apiKey == "" {
		return ""
	}

	if len(apiKey) <= 10 {
		return "***"
	}

	// Show first 3 chars and last 4 chars
	return apiKey[:3] + "..." + apiKey[len(apiKey)-4:]
}
