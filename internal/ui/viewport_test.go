package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmorhart/sweeper/internal/field"
)

func TestSlideViewportStaysAtOriginWhenEverythingFits(t *testing.T) {
	offset := SlideViewport(field.Position{}, field.Position{Row: 4, Col: 4}, 5, 5, 10, 10)
	assert.Equal(t, field.Position{}, offset)
}

func TestSlideViewportFollowsTheCursorDownAndRight(t *testing.T) {
	// 10x10 field in a 5x5 window: moving towards the far corner drags
	// the window along, keeping one cell of context ahead.
	offset := field.Position{}
	for _, cursor := range []field.Position{
		{Row: 3, Col: 3}, {Row: 4, Col: 4}, {Row: 5, Col: 5},
	} {
		offset = SlideViewport(offset, cursor, 10, 10, 5, 5)
	}

	assert.Equal(t, field.Position{Row: 2, Col: 2}, offset)
}

func TestSlideViewportFollowsTheCursorBackUp(t *testing.T) {
	offset := field.Position{Row: 5, Col: 5}

	offset = SlideViewport(offset, field.Position{Row: 5, Col: 5}, 10, 10, 5, 5)
	assert.Equal(t, field.Position{Row: 4, Col: 4}, offset)
}

func TestSlideViewportNeverExposesSpaceBeyondTheField(t *testing.T) {
	offset := SlideViewport(field.Position{}, field.Position{Row: 9, Col: 9}, 10, 10, 5, 5)
	assert.Equal(t, field.Position{Row: 5, Col: 5}, offset)

	offset = SlideViewport(offset, field.Position{Row: 0, Col: 0}, 10, 10, 5, 5)
	assert.Equal(t, field.Position{Row: 0, Col: 0}, offset)
}
