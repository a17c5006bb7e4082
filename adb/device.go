package adb

import (
	"context"
	"errors"

	"github.com/viant/android-mcp/adb/parse"
	"golang.org/x/sync/errgroup"
)

// Properties represents a best effort property snapshot
type Properties struct {
	Values  map[string]string `json:"values"`
	Omitted []string          `json:"omitted,omitempty"`
}

// Size represents screen dimensions in pixels
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type propertyQuery struct {
	key       string
	args      []string
	lastColon bool
}

var propertyQueries = []propertyQuery{
	{key: "model", args: []string{"getprop", "ro.product.model"}},
	{key: "android_version", args: []string{"getprop", "ro.build.version.release"}},
	{key: "sdk_version", args: []string{"getprop", "ro.build.version.sdk"}},
	{key: "manufacturer", args: []string{"getprop", "ro.product.manufacturer"}},
	{key: "screen_size", args: []string{"wm", "size"}, lastColon: true},
	{key: "screen_density", args: []string{"wm", "density"}, lastColon: true},
}

// Devices lists attached devices; a non-zero exit, unreachable target included, yields an empty list
func (c *Client) Devices(ctx context.Context) ([]parse.Device, error) {
	result, err := c.run(ctx, "devices")
	if err != nil {
		var unreachable *UnreachableError
		if errors.As(err, &unreachable) {
			return []parse.Device{}, nil
		}
		return nil, err
	}
	if !result.Succeeded() {
		return []parse.Device{}, nil
	}
	return parse.Devices(result.Text()), nil
}

// DeviceInfo queries device properties concurrently. A failed sub-query is recorded
// in Omitted instead of failing the call.
func (c *Client) DeviceInfo(ctx context.Context) (*Properties, error) {
	values := make([]*string, len(propertyQueries))
	group, groupCtx := errgroup.WithContext(ctx)
	for i, query := range propertyQueries {
		group.Go(func() error {
			value, err := c.shellText(groupCtx, query.args...)
			if err != nil || value == nil {
				return err
			}
			if query.lastColon {
				parsed, ok := parse.LastColonValue(*value)
				if !ok {
					return nil
				}
				value = &parsed
			}
			values[i] = value
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	ret := &Properties{Values: map[string]string{}}
	for i, query := range propertyQueries {
		if values[i] == nil {
			ret.Omitted = append(ret.Omitted, query.key)
			continue
		}
		ret.Values[query.key] = *values[i]
	}
	return ret, nil
}

// ScreenSize returns the physical screen size, nil when unknown
func (c *Client) ScreenSize(ctx context.Context) (*Size, error) {
	output, err := c.shellText(ctx, "wm", "size")
	if err != nil || output == nil {
		return nil, err
	}
	value, ok := parse.LastColonValue(*output)
	if !ok {
		return nil, nil
	}
	width, height, ok := parse.ScreenSize(value)
	if !ok {
		return nil, nil
	}
	return &Size{Width: width, Height: height}, nil
}
