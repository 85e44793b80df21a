package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"calgrid/internal/grid"
)

func TestScrollSync(t *testing.T) {
	var scroll grid.ScrollSync
	header := &grid.ScrollPane{}

	scroll.OnBodyScroll(50)
	assert.Zero(t, header.ScrollLeft())

	release := scroll.Bind(header)
	scroll.OnBodyScroll(120)
	assert.Equal(t, 120.0, header.ScrollLeft())

	header.SetScrollLeft(10)
	scroll.OnBodyScroll(130)
	assert.Equal(t, 130.0, header.ScrollLeft())

	release()
	scroll.OnBodyScroll(400)
	assert.Equal(t, 130.0, header.ScrollLeft())
}
