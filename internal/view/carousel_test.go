package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCarousel_Wraparound(t *testing.T) {
	t.Run("next wraps from last index to zero", func(t *testing.T) {
		c := NewCarousel(3)
		c.Select(2)
		c.Next()
		assert.Equal(t, 0, c.Index())
	})

	t.Run("prev wraps from zero to last index", func(t *testing.T) {
		c := NewCarousel(3)
		c.Prev()
		assert.Equal(t, 2, c.Index())
	})

	t.Run("next and prev step by one inside the range", func(t *testing.T) {
		c := NewCarousel(4)
		c.Next()
		assert.Equal(t, 1, c.Index())
		c.Next()
		assert.Equal(t, 2, c.Index())
		c.Prev()
		assert.Equal(t, 1, c.Index())
	})
}

func TestCarousel_NavDisabled(t *testing.T) {
	for _, count := range []int{0, 1} {
		c := NewCarousel(count)
		assert.False(t, c.NavEnabled())

		c.Next()
		assert.Equal(t, 0, c.Index())
		c.Prev()
		assert.Equal(t, 0, c.Index())
	}

	assert.True(t, NewCarousel(2).NavEnabled())
}

func TestCarousel_SelectIgnoresOutOfRange(t *testing.T) {
	c := NewCarousel(3)
	c.Select(1)
	assert.Equal(t, 1, c.Index())

	c.Select(3)
	assert.Equal(t, 1, c.Index())
	c.Select(-1)
	assert.Equal(t, 1, c.Index())
}

func TestCarousel_Thumbnails(t *testing.T) {
	currentOf := func(thumbs []Thumbnail) (int, int) {
		current, n := -1, 0
		for _, th := range thumbs {
			if th.Current {
				current = th.Index
				n++
			}
		}
		assert.Equal(t, 1, n, "exactly one thumbnail must be current")
		return current, n
	}

	t.Run("empty carousel shows nothing", func(t *testing.T) {
		assert.Empty(t, NewCarousel(0).Thumbnails())
	})

	t.Run("single image shows one current thumbnail", func(t *testing.T) {
		thumbs := NewCarousel(1).Thumbnails()
		assert.Len(t, thumbs, 1)
		current, _ := currentOf(thumbs)
		assert.Equal(t, 0, current)
	})

	t.Run("two images show both in ascending order", func(t *testing.T) {
		c := NewCarousel(2)
		c.Select(1)
		thumbs := c.Thumbnails()
		require.Len(t, thumbs, 2)
		assert.Equal(t, []int{0, 1}, []int{thumbs[0].Index, thumbs[1].Index})
		current, _ := currentOf(thumbs)
		assert.Equal(t, 1, current)

		c.Select(0)
		thumbs = c.Thumbnails()
		assert.Equal(t, []int{0, 1}, []int{thumbs[0].Index, thumbs[1].Index})
		current, _ = currentOf(thumbs)
		assert.Equal(t, 0, current)
	})

	t.Run("three or more show current and its neighbors with wraparound", func(t *testing.T) {
		c := NewCarousel(5)
		thumbs := c.Thumbnails()
		assert.Len(t, thumbs, 3)

		indices := []int{thumbs[0].Index, thumbs[1].Index, thumbs[2].Index}
		assert.Equal(t, []int{4, 0, 1}, indices)
		current, _ := currentOf(thumbs)
		assert.Equal(t, 0, current)

		c.Select(4)
		thumbs = c.Thumbnails()
		indices = []int{thumbs[0].Index, thumbs[1].Index, thumbs[2].Index}
		assert.Equal(t, []int{3, 4, 0}, indices)
	})
}
