// Package carousel models the slide picker, the settle-delay scheduler, and
// the bridge that turns slide selection into particle retargeting.
package carousel

import "time"

// Carousel is the slide-selection widget model.
// Selecting a slide notifies every subscriber with the new index, even if
// the index did not change.
type Carousel struct {
	n         int
	selected  int
	wrap      bool
	autoplay  time.Duration
	idle      time.Duration
	listeners []func(index int)
}

// New creates a carousel over n slides with slide 0 selected.
// Panics if n < 1.
func New(n int, wrap bool, autoplay time.Duration) *Carousel {
	if n < 1 {
		panic("carousel: no slides")
	}
	return &Carousel{n: n, wrap: wrap, autoplay: autoplay}
}

// Len returns the number of slides.
func (c *Carousel) Len() int { return c.n }

// Selected returns the selected slide index.
func (c *Carousel) Selected() int { return c.selected }

// OnSelect subscribes fn to selection changes.
func (c *Carousel) OnSelect(fn func(index int)) {
	c.listeners = append(c.listeners, fn)
}

// Select selects slide i. With wrap-around, out-of-range indices wrap;
// without it they are ignored. Returns whether a selection happened.
func (c *Carousel) Select(i int) bool {
	if c.wrap {
		i = ((i % c.n) + c.n) % c.n
	} else if i < 0 || i >= c.n {
		return false
	}
	c.selected = i
	c.idle = 0
	for _, fn := range c.listeners {
		fn(i)
	}
	return true
}

// Next selects the following slide.
func (c *Carousel) Next() bool { return c.Select(c.selected + 1) }

// Prev selects the preceding slide.
func (c *Carousel) Prev() bool { return c.Select(c.selected - 1) }

// Advance moves the autoplay clock by dt and steps to the next slide
// when the interval elapses. Any selection restarts the interval.
func (c *Carousel) Advance(dt time.Duration) {
	if c.autoplay <= 0 || c.n < 2 {
		return
	}
	c.idle += dt
	if c.idle >= c.autoplay {
		if !c.Next() {
			// End of a non-wrapping carousel: start over.
			c.Select(0)
		}
	}
}
