package photoprocessor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWebPath(t *testing.T) {
	assert.Equal(t, "", WebPath(""))
	assert.Equal(t, "/uploads/photos/2026/08/abc.jpg", WebPath("photos/2026/08/abc.jpg"))
	assert.Equal(t, "/uploads/photos/2026/08/abc_small.webp", WebPath("photos/2026/08/abc_small.webp"))
}
