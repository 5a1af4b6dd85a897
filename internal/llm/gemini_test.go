package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanMarkdownOutput(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "# Title\n\nbody", "# Title\n\nbody"},
		{"markdown fence", "```markdown\n# Title\n\nbody\n```", "# Title\n\nbody"},
		{"md fence", "```md\n# Title\n```", "# Title"},
		{"bare fence", "```\n# Title\n```", "# Title"},
		{"surrounding whitespace", "\n\n# Title\n\n", "# Title"},
		{"inner fences survive", "# Title\n\n```sh\nrun\n```\n", "# Title\n\n```sh\nrun\n```"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, cleanMarkdownOutput(tc.in))
		})
	}
}
