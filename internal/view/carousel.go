package view

// Carousel tracks the active position in an ordered image sequence.
// The zero value is an empty carousel with navigation disabled.
type Carousel struct {
	index int
	count int
}

// NewCarousel creates a carousel over count images, starting at index 0.
func NewCarousel(count int) Carousel {
	return Carousel{count: count}
}

// Index returns the active position.
func (c Carousel) Index() int { return c.index }

// Count returns the number of images.
func (c Carousel) Count() int { return c.count }

// NavEnabled reports whether next/prev controls are active. They are
// disabled entirely for 0 or 1 images.
func (c Carousel) NavEnabled() bool { return c.count > 1 }

// Select sets the active position directly. Out-of-range values are
// ignored so the index always stays within the image sequence.
func (c *Carousel) Select(i int) {
	if i < 0 || i >= c.count {
		return
	}
	c.index = i
}

// Next advances by one with wraparound from the last image to the first.
// No-op when navigation is disabled.
func (c *Carousel) Next() {
	if !c.NavEnabled() {
		return
	}
	if c.index == c.count-1 {
		c.Select(0)
		return
	}
	c.Select(c.index + 1)
}

// Prev moves back by one with wraparound from the first image to the last.
// No-op when navigation is disabled.
func (c *Carousel) Prev() {
	if !c.NavEnabled() {
		return
	}
	if c.index == 0 {
		c.Select(c.count - 1)
		return
	}
	c.Select(c.index - 1)
}

// Thumbnail is one entry of the visible thumbnail strip.
type Thumbnail struct {
	Index   int  `json:"index"`
	Current bool `json:"current"`
}

// Thumbnails returns the visible strip: the active image and its
// immediate neighbors with wraparound, min(3, count) entries in total.
func (c Carousel) Thumbnails() []Thumbnail {
	switch c.count {
	case 0:
		return nil
	case 1:
		return []Thumbnail{{Index: 0, Current: true}}
	case 2:
		return []Thumbnail{
			{Index: 0, Current: c.index == 0},
			{Index: 1, Current: c.index == 1},
		}
	}

	prev := (c.index - 1 + c.count) % c.count
	next := (c.index + 1) % c.count
	return []Thumbnail{
		{Index: prev},
		{Index: c.index, Current: true},
		{Index: next},
	}
}
