package adb

import (
	"context"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultSwipeDuration is the swipe duration in milliseconds
	DefaultSwipeDuration = 300
	// DefaultLongPressDuration is the long press duration in milliseconds
	DefaultLongPressDuration = 1000
	// DefaultScrollDistance is the scroll distance in pixels
	DefaultScrollDistance = 500
	// DoubleTapInterval separates the taps of a double tap
	DoubleTapInterval = 100 * time.Millisecond

	fallbackCenterX = 540
	fallbackCenterY = 1200
)

// Tap taps at x, y
func (c *Client) Tap(ctx context.Context, x, y int) (bool, error) {
	return c.shellSucceeded(ctx, "input", "tap", strconv.Itoa(x), strconv.Itoa(y))
}

// Swipe swipes from x1, y1 to x2, y2 over durationMs milliseconds
func (c *Client) Swipe(ctx context.Context, x1, y1, x2, y2, durationMs int) (bool, error) {
	if durationMs <= 0 {
		durationMs = DefaultSwipeDuration
	}
	return c.shellSucceeded(ctx, "input", "swipe",
		strconv.Itoa(x1), strconv.Itoa(y1), strconv.Itoa(x2), strconv.Itoa(y2), strconv.Itoa(durationMs))
}

// InputText types text into the focused field; spaces are sent as %s
func (c *Client) InputText(ctx context.Context, text string) (bool, error) {
	return c.shellSucceeded(ctx, "input", "text", strings.ReplaceAll(text, " ", "%s"))
}

// PressKey sends a key event by name (KEYCODE_HOME) or number (3)
func (c *Client) PressKey(ctx context.Context, keycode string) (bool, error) {
	return c.shellSucceeded(ctx, "input", "keyevent", keycode)
}

// LongPress holds at x, y for durationMs milliseconds
func (c *Client) LongPress(ctx context.Context, x, y, durationMs int) (bool, error) {
	if durationMs <= 0 {
		durationMs = DefaultLongPressDuration
	}
	return c.Swipe(ctx, x, y, x, y, durationMs)
}

// DoubleTap taps twice at x, y; the outcome of the second tap is reported
func (c *Client) DoubleTap(ctx context.Context, x, y int) (bool, error) {
	if _, err := c.Tap(ctx, x, y); err != nil {
		return false, err
	}
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case <-time.After(DoubleTapInterval):
	}
	return c.Tap(ctx, x, y)
}

// Pinch approximates a pinch with a single horizontal swipe between the scaled
// offsets from the center. Devices need multi-touch injection for a real pinch,
// which "input" does not offer.
func (c *Client) Pinch(ctx context.Context, centerX, centerY, startDistance, endDistance int) (bool, error) {
	return c.Swipe(ctx, centerX-startDistance/2, centerY, centerX-endDistance/2, centerY, DefaultSwipeDuration)
}

// ScrollUp drags the content down by distance pixels starting at the screen center.
// A non nil x overrides the horizontal coordinate; a fixed center is used when the
// screen size is unknown.
func (c *Client) ScrollUp(ctx context.Context, x *int, distance int) (bool, error) {
	centerX, centerY := c.scrollOrigin(ctx, x)
	if distance <= 0 {
		distance = DefaultScrollDistance
	}
	return c.Swipe(ctx, centerX, centerY, centerX, centerY+distance, DefaultSwipeDuration)
}

// ScrollDown drags the content up by distance pixels
func (c *Client) ScrollDown(ctx context.Context, x *int, distance int) (bool, error) {
	centerX, centerY := c.scrollOrigin(ctx, x)
	if distance <= 0 {
		distance = DefaultScrollDistance
	}
	return c.Swipe(ctx, centerX, centerY, centerX, centerY-distance, DefaultSwipeDuration)
}

// scrollOrigin returns the screen center, or the fixed center when the size is
// unknown; an explicit x only replaces the horizontal coordinate.
func (c *Client) scrollOrigin(ctx context.Context, x *int) (int, int) {
	centerX, centerY := fallbackCenterX, fallbackCenterY
	if size, err := c.ScreenSize(ctx); err == nil && size != nil {
		centerX, centerY = size.Width/2, size.Height/2
	}
	if x != nil {
		centerX = *x
	}
	return centerX, centerY
}
