package tool

import (
	"context"
	"fmt"

	"github.com/viant/android-mcp/adb"
)

func (a *android) inputOperations() []*Operation {
	return []*Operation{
		operation("tap", "Simulate a tap/click at the specified screen coordinates.",
			func(ctx context.Context, args Args) (*Response, error) {
				x, y := args.Int("x"), args.Int("y")
				ok, err := a.client.Tap(ctx, x, y)
				if err != nil {
					return nil, err
				}
				return Status(fmt.Sprintf("Tap at (%d, %d)", x, y), ok), nil
			},
			Required("x", TypeInteger, "X coordinate to tap"),
			Required("y", TypeInteger, "Y coordinate to tap")),
		operation("swipe", "Simulate a swipe gesture from one point to another.",
			func(ctx context.Context, args Args) (*Response, error) {
				x1, y1, x2, y2 := args.Int("x1"), args.Int("y1"), args.Int("x2"), args.Int("y2")
				ok, err := a.client.Swipe(ctx, x1, y1, x2, y2, args.Int("duration_ms"))
				if err != nil {
					return nil, err
				}
				return Status(fmt.Sprintf("Swipe from (%d, %d) to (%d, %d)", x1, y1, x2, y2), ok), nil
			},
			Required("x1", TypeInteger, "Start X coordinate"),
			Required("y1", TypeInteger, "Start Y coordinate"),
			Required("x2", TypeInteger, "End X coordinate"),
			Required("y2", TypeInteger, "End Y coordinate"),
			Optional("duration_ms", TypeInteger, "Duration of swipe in milliseconds", adb.DefaultSwipeDuration)),
		operation("input_text", "Input text into the currently focused text field.",
			func(ctx context.Context, args Args) (*Response, error) {
				text := args.String("text")
				ok, err := a.client.InputText(ctx, text)
				if err != nil {
					return nil, err
				}
				return Status(fmt.Sprintf("Input text '%s'", text), ok), nil
			},
			Required("text", TypeString, "Text to input")),
		operation("press_key", "Press a hardware key. Common keys: KEYCODE_HOME (3), KEYCODE_BACK (4), KEYCODE_ENTER (66), KEYCODE_MENU (82), KEYCODE_POWER (26), KEYCODE_VOLUME_UP (24), KEYCODE_VOLUME_DOWN (25).",
			func(ctx context.Context, args Args) (*Response, error) {
				keycode := args.String("keycode")
				ok, err := a.client.PressKey(ctx, keycode)
				if err != nil {
					return nil, err
				}
				return Status("Press key "+keycode, ok), nil
			},
			Required("keycode", TypeString, "The keycode to press")),
		operation("long_press", "Long press at the specified coordinates.",
			func(ctx context.Context, args Args) (*Response, error) {
				x, y := args.Int("x"), args.Int("y")
				ok, err := a.client.LongPress(ctx, x, y, args.Int("duration_ms"))
				if err != nil {
					return nil, err
				}
				return Status(fmt.Sprintf("Long press at (%d, %d)", x, y), ok), nil
			},
			Required("x", TypeInteger, "X coordinate"),
			Required("y", TypeInteger, "Y coordinate"),
			Optional("duration_ms", TypeInteger, "Duration in milliseconds", adb.DefaultLongPressDuration)),
		operation("double_tap", "Double tap at the specified coordinates.",
			func(ctx context.Context, args Args) (*Response, error) {
				x, y := args.Int("x"), args.Int("y")
				ok, err := a.client.DoubleTap(ctx, x, y)
				if err != nil {
					return nil, err
				}
				return Status(fmt.Sprintf("Double tap at (%d, %d)", x, y), ok), nil
			},
			Required("x", TypeInteger, "X coordinate"),
			Required("y", TypeInteger, "Y coordinate")),
		operation("pinch", "Approximate a pinch gesture around a center point with a single swipe (no multi-touch).",
			func(ctx context.Context, args Args) (*Response, error) {
				x, y := args.Int("center_x"), args.Int("center_y")
				from, to := args.Int("start_distance"), args.Int("end_distance")
				ok, err := a.client.Pinch(ctx, x, y, from, to)
				if err != nil {
					return nil, err
				}
				return Status(fmt.Sprintf("Pinch at (%d, %d) from %d to %d", x, y, from, to), ok), nil
			},
			Required("center_x", TypeInteger, "Center X coordinate"),
			Required("center_y", TypeInteger, "Center Y coordinate"),
			Required("start_distance", TypeInteger, "Finger distance at start in pixels"),
			Required("end_distance", TypeInteger, "Finger distance at end in pixels")),
		operation("scroll_up", "Scroll up on the screen.",
			func(ctx context.Context, args Args) (*Response, error) {
				ok, err := a.client.ScrollUp(ctx, args.IntPtr("x"), args.Int("distance"))
				if err != nil {
					return nil, err
				}
				return Status("Scroll up", ok), nil
			},
			Optional("x", TypeInteger, "X coordinate, defaults to the screen center", nil),
			Optional("distance", TypeInteger, "Scroll distance in pixels", adb.DefaultScrollDistance)),
		operation("scroll_down", "Scroll down on the screen.",
			func(ctx context.Context, args Args) (*Response, error) {
				ok, err := a.client.ScrollDown(ctx, args.IntPtr("x"), args.Int("distance"))
				if err != nil {
					return nil, err
				}
				return Status("Scroll down", ok), nil
			},
			Optional("x", TypeInteger, "X coordinate, defaults to the screen center", nil),
			Optional("distance", TypeInteger, "Scroll distance in pixels", adb.DefaultScrollDistance)),
	}
}
