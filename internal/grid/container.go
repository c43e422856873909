package grid

// Container anchors the grid's local coordinate space inside the viewport.
// Until Place is called it is unmeasured and conversions fail.
type Container struct {
	x, y     float64
	measured bool
}

// Place records the container's top-left corner in viewport pixels.
func (c *Container) Place(x, y float64) {
	c.x, c.y = x, y
	c.measured = true
}

// Reset marks the container unmeasured again.
func (c *Container) Reset() {
	*c = Container{}
}

// Origin returns the top-left corner in viewport pixels.
func (c *Container) Origin() (x, y float64, ok bool) {
	return c.x, c.y, c.measured
}

// ToLocal converts a viewport point into grid-local coordinates:
// local = absolute - containerTopLeft.
func (c *Container) ToLocal(absX, absY float64) (x, y float64, ok bool) {
	if !c.measured {
		return 0, 0, false
	}
	return absX - c.x, absY - c.y, true
}
