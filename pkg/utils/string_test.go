package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateRandomString(t *testing.T) {
	s := GenerateRandomString(12)
	assert.Len(t, s, 12)
	for _, r := range s {
		assert.True(t, strings.ContainsRune(charset, r), "unexpected character %q", r)
	}

	assert.Empty(t, GenerateRandomString(0))
}
