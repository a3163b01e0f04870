package prompt

import "strings"

// Clean strips markdown code-fence markers that some providers wrap
// around HTML payloads. The rest of the content is left untouched.
// Removing markers is idempotent: Clean(Clean(s)) == Clean(s).
func Clean(raw string) string {
	s := strings.ReplaceAll(raw, "```html", "")
	s = strings.ReplaceAll(s, "```", "")
	return s
}
