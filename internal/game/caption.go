package game

// Caption is the ephemeral text label shown under the player cell.
// The text is purely cosmetic and never feeds back into the simulation.
type Caption struct {
	text      string
	remaining float64 // Seconds of display time left
}

// Set replaces the caption text and resets the display timer.
func (c *Caption) Set(text string, seconds float64) {
	c.text = text
	c.remaining = seconds
}

// Clear removes the caption immediately.
func (c *Caption) Clear() {
	c.text = ""
	c.remaining = 0
}

// Tick decays the display timer by dt seconds, clearing the text once the
// timer runs out.
func (c *Caption) Tick(dt float64) {
	if c.remaining <= 0 {
		return
	}
	c.remaining -= dt
	if c.remaining <= 0 {
		c.Clear()
	}
}

// Text returns the current caption text, or empty when expired.
func (c Caption) Text() string {
	return c.text
}

// Active reports whether a caption is currently displayed.
func (c Caption) Active() bool {
	return c.text != "" && c.remaining > 0
}
