package lumen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnsureSingleRenderer(t *testing.T) {
	app := NewApp()

	ensureSingleRenderer(app, "gl")
	// Reinstalling the same renderer is allowed.
	assert.NotPanics(t, func() {
		ensureSingleRenderer(app, "gl")
	})

	assert.Panics(t, func() {
		ensureSingleRenderer(app, "other")
	})
}
