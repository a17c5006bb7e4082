package androidmcp

import (
	"context"
	"fmt"
	"time"

	"github.com/viant/afs"
	"github.com/viant/android-mcp/adb"
	"github.com/viant/android-mcp/internal/logging"
	"github.com/viant/android-mcp/server"
	"github.com/viant/android-mcp/transport/mqtt"
	"gopkg.in/yaml.v3"
)

// Transport types
const (
	TransportStdio      = "stdio"
	TransportSSE        = "sse"
	TransportStreamable = "streamable"
	TransportNone       = "none"
)

// Options represents service options
type Options struct {
	ConfigURL       string          `yaml:"-" json:"-" short:"c" long:"config" description:"YAML config URL (file, mem, s3, gs ...)"`
	Name            string          `yaml:"name" json:"name" long:"name" description:"server name"`
	Version         string          `yaml:"version" json:"version" long:"version" description:"server version"`
	ProtocolVersion string          `yaml:"protocol" json:"protocol" short:"p" long:"protocol" description:"mcp protocol"`
	Instructions    string          `yaml:"instructions" json:"instructions" long:"instructions" description:"instructions returned on initialize"`
	Device          DeviceOptions   `yaml:"device" json:"device" group:"device"`
	Transport       TransportOption `yaml:"transport" json:"transport" group:"transport"`
	Log             logging.Options `yaml:"log" json:"log" group:"logging" namespace:"log"`
	MQTT            mqtt.Config     `yaml:"mqtt" json:"mqtt" group:"mqtt" namespace:"mqtt"`
}

// DeviceOptions represents the target device settings
type DeviceOptions struct {
	Serial     string `yaml:"serial" json:"serial" short:"s" long:"serial" description:"target device serial"`
	ADBPath    string `yaml:"adb" json:"adb" long:"adb" description:"adb executable"`
	TimeoutSec int    `yaml:"timeoutSec" json:"timeoutSec" long:"timeout" description:"default adb timeout in seconds"`
}

// Timeout returns the default invocation budget
func (d *DeviceOptions) Timeout() time.Duration {
	return time.Duration(d.TimeoutSec) * time.Second
}

// TransportOption represents MCP transport settings
type TransportOption struct {
	Type         string       `yaml:"type" json:"type" short:"T" long:"transport" description:"mcp transport" choice:"stdio" choice:"sse" choice:"streamable" choice:"none"`
	Addr         string       `yaml:"addr" json:"addr" short:"a" long:"addr" description:"HTTP listen address"`
	RootRedirect bool         `yaml:"rootRedirect" json:"rootRedirect" long:"root-redirect" description:"redirect / to the active HTTP transport"`
	Cors         *server.Cors `yaml:"cors" json:"cors"`
}

// HTTP returns true for HTTP based transports
func (t *TransportOption) HTTP() bool {
	return t.Type == TransportSSE || t.Type == TransportStreamable
}

// Init applies defaults
func (o *Options) Init() {
	if o.Name == "" {
		o.Name = "android-mcp"
	}
	if o.Version == "" {
		o.Version = "0.1"
	}
	if o.Device.ADBPath == "" {
		o.Device.ADBPath = adb.DefaultPath
	}
	if o.Device.TimeoutSec <= 0 {
		o.Device.TimeoutSec = int(adb.DefaultTimeout / time.Second)
	}
	if o.Transport.Type == "" {
		o.Transport.Type = TransportStdio
	}
	if o.MQTT.Device == "" {
		o.MQTT.Device = o.Device.Serial
	}
}

// Validate checks options
func (o *Options) Validate() error {
	switch o.Transport.Type {
	case TransportStdio, TransportSSE, TransportStreamable:
	case TransportNone:
		if !o.MQTT.Enabled() {
			return fmt.Errorf("no transport enabled: set an mcp transport or an mqtt broker")
		}
	default:
		return fmt.Errorf("unsupported transport: %v", o.Transport.Type)
	}
	if o.Transport.Type == TransportStdio && o.Transport.Addr != "" {
		return fmt.Errorf("addr is only supported with sse or streamable transport")
	}
	return nil
}

// LoadOptions loads options from a YAML document at URL
func LoadOptions(ctx context.Context, fs afs.Service, URL string) (*Options, error) {
	if fs == nil {
		fs = afs.New()
	}
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %v: %w", URL, err)
	}
	ret := &Options{}
	if err = yaml.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("invalid config %v: %w", URL, err)
	}
	ret.ConfigURL = URL
	return ret, nil
}
