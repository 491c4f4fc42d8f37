package input

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-kingshot/pkg/geom"
)

func TestCommands_WithCamera(t *testing.T) {
	var c Commands
	got := c.WithCamera(geom.V(1, 2, 3), geom.V(0, 0, 0))

	assert.True(t, got.HasCamera)
	assert.Equal(t, geom.V(1, 2, 3), got.Camera.Position)
	assert.False(t, c.HasCamera, "receiver is not modified")
}

func TestCommands_Any(t *testing.T) {
	assert.False(t, Commands{}.Any())
	assert.False(t, Commands{}.WithCamera(geom.V(1, 1, 1), geom.V(0, 0, 0)).Any())
	assert.True(t, Commands{BuildFence: true}.Any())
}
