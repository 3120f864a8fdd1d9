package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateUsername(t *testing.T) {
	for i := 0; i < 1000; i++ {
		username := generateUsername()
		assert.NotEmpty(t, username)
		assert.LessOrEqual(t, len(username), 15)
		// candidates stay inside the edit-time bound, so a generated
		// name always survives a later profile edit unchanged
		assert.GreaterOrEqual(t, len(username), 3)
	}
}
