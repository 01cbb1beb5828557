package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquare_IsMarked(t *testing.T) {
	t.Run("Returns false for an unplayed square", func(t *testing.T) {
		// Given: a square nobody has played
		square := &Square{Row: 1, Col: 1}

		// Then: it is not marked
		assert.False(t, square.IsMarked())
	})

	t.Run("Returns true once a mark is placed", func(t *testing.T) {
		// Given: a square carrying a mark
		square := &Square{Row: 0, Col: 0, Mark: PlayerX}

		// Then: it is marked
		assert.True(t, square.IsMarked())
	})
}

func TestSquare_Same(t *testing.T) {
	t.Run("Equality is by position only", func(t *testing.T) {
		// Given: two squares at the same position with different marks
		marked := &Square{Row: 1, Col: 2, Mark: PlayerX}
		unmarked := &Square{Row: 1, Col: 2}

		// Then: they are the same square
		assert.True(t, marked.Same(unmarked))
		assert.True(t, unmarked.Same(marked))
	})

	t.Run("Different positions are different squares", func(t *testing.T) {
		// Given: squares at different positions
		a := &Square{Row: 0, Col: 0}
		b := &Square{Row: 0, Col: 1}

		// Then: they are not the same square
		assert.False(t, a.Same(b))
	})

	t.Run("Nil is never the same square", func(t *testing.T) {
		square := &Square{Row: 0, Col: 0}

		assert.False(t, square.Same(nil))
	})
}
