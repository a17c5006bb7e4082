package androidmcp

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jessevdk/go-flags"
	"github.com/viant/afs"
)

// ParseOptions parses command line args; a config file is loaded first and flags override it
func ParseOptions(ctx context.Context, args []string) (*Options, error) {
	options := &Options{}
	if _, err := flags.ParseArgs(options, args); err != nil {
		return nil, err
	}
	if options.ConfigURL == "" {
		return options, nil
	}
	fileOptions, err := LoadOptions(ctx, afs.New(), options.ConfigURL)
	if err != nil {
		return nil, err
	}
	if _, err = flags.ParseArgs(fileOptions, args); err != nil {
		return nil, err
	}
	return fileOptions, nil
}

// Run runs the service with command line args until interrupted
func Run(args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	options, err := ParseOptions(ctx, args)
	if err != nil {
		return err
	}
	service, err := New(ctx, options)
	if err != nil {
		return err
	}
	return service.Run(ctx)
}
