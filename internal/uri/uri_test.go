package uri

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileURI(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"simple path", "/home/user/notes.txt", "file:///home/user/notes.txt"},
		{"spaces", "/home/user/My Notes/a b.txt", "file:///home/user/My%20Notes/a%20b.txt"},
		{"special characters", "/tmp/a#b?c.txt", "file:///tmp/a%23b%3Fc.txt"},
		{"unicode", "/tmp/café.md", "file:///tmp/caf%C3%A9.md"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FileURI(tt.path))
		})
	}
}
