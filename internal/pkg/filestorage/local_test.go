package filestorage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasAllowedExtension(t *testing.T) {
	assert.True(t, HasAllowedExtension("paper.pdf", "pdf"))
	assert.True(t, HasAllowedExtension("PAPER.PDF", "pdf"))
	assert.False(t, HasAllowedExtension("paper.docx", "pdf"))
	assert.False(t, HasAllowedExtension("paper", "pdf"))
	assert.False(t, HasAllowedExtension("pdf", "pdf"))
	assert.False(t, HasAllowedExtension("", "pdf"))
}
