package androidmcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/viant/afs"
	"github.com/viant/android-mcp/adb"
	"github.com/viant/android-mcp/internal/logging"
	"github.com/viant/android-mcp/internal/stage"
	"github.com/viant/android-mcp/server"
	"github.com/viant/android-mcp/tool"
	"github.com/viant/android-mcp/transport/mqtt"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

// Service represents a running android-mcp instance
type Service struct {
	options  *Options
	logger   *zap.Logger
	client   *adb.Client
	registry *tool.Registry
	server   *server.Server
	mqtt     *mqtt.Service
}

// Registry returns the operation registry
func (s *Service) Registry() *tool.Registry {
	return s.registry
}

// Server returns the MCP server
func (s *Service) Server() *server.Server {
	return s.server
}

// Run serves the configured transports until ctx is done or one of them fails
func (s *Service) Run(ctx context.Context) error {
	group, groupCtx := errgroup.WithContext(ctx)
	switch s.options.Transport.Type {
	case TransportStdio:
		group.Go(func() error {
			return s.server.Stdio(groupCtx).ListenAndServe()
		})
	case TransportSSE, TransportStreamable:
		httpServer := s.server.HTTP(groupCtx, s.options.Transport.Addr)
		group.Go(func() error {
			s.logger.Info("mcp http transport started", zap.String("addr", httpServer.Addr), zap.String("type", s.options.Transport.Type))
			if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		group.Go(func() error {
			<-groupCtx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return httpServer.Shutdown(shutdownCtx)
		})
	}
	if s.mqtt != nil {
		group.Go(func() error {
			return s.mqtt.Serve(groupCtx)
		})
	}
	return group.Wait()
}

// New creates a service; adb options are applied after the configured ones
func New(ctx context.Context, options *Options, adbOptions ...adb.Option) (*Service, error) {
	if options == nil {
		options = &Options{}
	}
	options.Init()
	if err := options.Validate(); err != nil {
		return nil, err
	}
	logger, err := logging.New(&options.Log)
	if err != nil {
		return nil, err
	}
	clientOptions := []adb.Option{
		adb.WithSerial(options.Device.Serial),
		adb.WithPath(options.Device.ADBPath),
		adb.WithTimeout(options.Device.Timeout()),
		adb.WithLogger(logger.Named("adb")),
	}
	client := adb.New(append(clientOptions, adbOptions...)...)
	registry, err := tool.NewAndroid(client,
		tool.WithLogger(logger.Named("tool")),
		tool.WithStage(stage.New(afs.New())))
	if err != nil {
		return nil, fmt.Errorf("failed to build operation registry: %w", err)
	}
	ret := &Service{options: options, logger: logger, client: client, registry: registry}
	if options.Transport.Type != TransportNone {
		if ret.server, err = NewServer(registry, options, logger.Named("mcp")); err != nil {
			return nil, err
		}
	}
	if options.MQTT.Enabled() {
		if ret.mqtt, err = mqtt.New(registry, &options.MQTT, mqtt.WithLogger(logger.Named("mqtt"))); err != nil {
			return nil, err
		}
	}
	logger.Debug("service created",
		zap.String("serial", client.Serial()),
		zap.String("transport", options.Transport.Type),
		zap.Bool("mqtt", ret.mqtt != nil),
		zap.Int("operations", len(registry.Descriptors())))
	return ret, nil
}
