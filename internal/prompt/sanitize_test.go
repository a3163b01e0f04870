package prompt

import "testing"

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "html fence wrapper",
			in:   "```html<div>x</div>```",
			want: "<div>x</div>",
		},
		{
			name: "fence with newlines",
			in:   "```html\n<div class=\"dict-card\"></div>\n```",
			want: "\n<div class=\"dict-card\"></div>\n",
		},
		{
			name: "plain fences",
			in:   "```\nhello\n```",
			want: "\nhello\n",
		},
		{
			name: "no fences untouched",
			in:   "<p>已經乾淨</p>",
			want: "<p>已經乾淨</p>",
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
		{
			name: "fence mid-string",
			in:   "before```html after",
			want: "before after",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clean(tt.in)
			if got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCleanIdempotent(t *testing.T) {
	inputs := []string{
		"```html<div>x</div>```",
		"``````",
		"plain text",
		"``` ```html ```",
		"<div>嵌套 ``` 標記</div>",
	}
	for _, in := range inputs {
		once := Clean(in)
		twice := Clean(once)
		if once != twice {
			t.Errorf("Clean not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}
