// Package prompt builds the two fixed prompt shapes the gateway sends
// upstream. Untrusted input only ever fills the designated slots; the
// surrounding instructions are constant.
package prompt

import "fmt"

// Prompt is a system instruction plus a user message.
type Prompt struct {
	System string
	User   string
}

const translationSystem = "You are a translator. Translate the user's text to Traditional Chinese (Taiwan). Only output the translation, nothing else."

// Translation builds the prompt for a plain-text translation request.
func Translation(text string) Prompt {
	return Prompt{
		System: translationSystem,
		User:   text,
	}
}

const definitionSystem = "You are a linguistic expert. Output only valid HTML code as instructed."

// definitionTemplate is the dict-card contract with the caller's renderer.
// The section structure must be preserved field-for-field; only the word
// and context slots vary.
const definitionTemplate = `Act as a professional linguistic expert. Analyze the word %[1]q in the context: %[2]q.

Output valid HTML code using this EXACT structure (do not use markdown blocks):

<div class="dict-card">
    <div class="dict-header">
        <span class="dict-word">%[1]s</span>
        <span class="dict-cn">Traditional Chinese Translation</span>
        <span class="dict-ipa">[IPA Pronunciation]</span>
        <span class="dict-pos">part of speech</span>
    </div>

    <div class="dict-section context-meaning">
        <h4>🎯 上下文精準釋義</h4>
        <p>Explain the precise meaning of %[1]q in this specific sentence. Translate the explanation to Traditional Chinese.</p>
    </div>

    <div class="dict-section">
        <h4>📚 詳細定義</h4>
        <ul>
            <li><strong>English:</strong> Standard definition.</li>
            <li><strong>Chinese:</strong> Traditional Chinese translation.</li>
        </ul>
    </div>

    <div class="dict-section examples">
        <h4>🗣️ 雙語例句</h4>
        <ul>
            <li>
                <p class="en">Example sentence 1.</p>
                <p class="zh">Chinese translation.</p>
            </li>
            <li>
                <p class="en">Example sentence 2.</p>
                <p class="zh">Chinese translation.</p>
            </li>
        </ul>
    </div>

    <div class="dict-section footer">
        <p>💡 <span class="dict-note">Synonyms: synonym1, synonym2</span></p>
    </div>
</div>`

// Definition builds the structured dict-card prompt for a word in context.
func Definition(word, context string) Prompt {
	return Prompt{
		System: definitionSystem,
		User:   fmt.Sprintf(definitionTemplate, word, context),
	}
}
