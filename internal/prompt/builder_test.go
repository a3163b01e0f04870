package prompt

import (
	"strings"
	"testing"
)

func TestTranslation(t *testing.T) {
	p := Translation("Hello world")

	if p.User != "Hello world" {
		t.Errorf("user message = %q, want input text unchanged", p.User)
	}
	if !strings.Contains(p.System, "Traditional Chinese (Taiwan)") {
		t.Error("system prompt missing target language")
	}
	if !strings.Contains(p.System, "Only output the translation") {
		t.Error("system prompt missing output-only instruction")
	}
}

func TestDefinition(t *testing.T) {
	p := Definition("run", "I run daily")

	if !strings.Contains(p.User, `"run"`) {
		t.Error("prompt missing the word slot")
	}
	if !strings.Contains(p.User, `"I run daily"`) {
		t.Error("prompt missing the context slot")
	}

	// The section template is a contract with the caller's renderer.
	sections := []string{
		`class="dict-card"`,
		`class="dict-header"`,
		`class="dict-word"`,
		`class="dict-ipa"`,
		`class="dict-pos"`,
		`class="dict-section context-meaning"`,
		`class="dict-section examples"`,
		"Example sentence 1",
		"Example sentence 2",
		"Synonyms",
	}
	for _, s := range sections {
		if !strings.Contains(p.User, s) {
			t.Errorf("definition prompt missing section %q", s)
		}
	}

	if !strings.Contains(p.User, "do not use markdown blocks") {
		t.Error("prompt missing the no-fences instruction")
	}
}

func TestDefinitionEmptyContext(t *testing.T) {
	p := Definition("serendipity", "")
	if !strings.Contains(p.User, `"serendipity"`) {
		t.Error("prompt missing the word slot")
	}
}
