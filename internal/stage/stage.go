// Package stage moves files between afs locations and host paths the bridge can read
// or write. Plain paths and file:// URLs are used in place; any other scheme (mem,
// s3, gs, http, scp) is staged through a temporary host file.
package stage

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
)

// Service stages files
type Service struct {
	fs      afs.Service
	tempDir string
}

// Staged represents a host path backing a location
type Staged struct {
	// Path is the host path handed to the bridge
	Path     string
	location string
	remote   bool
	service  *Service
}

// Remote returns true when the location is not a host path
func (s *Staged) Remote() bool {
	return s.remote
}

// Commit uploads the host file to a remote location
func (s *Staged) Commit(ctx context.Context) error {
	if !s.remote {
		return nil
	}
	data, err := s.service.fs.DownloadWithURL(ctx, s.Path)
	if err != nil {
		return fmt.Errorf("failed to read staged file %v: %w", s.Path, err)
	}
	if err = s.service.fs.Upload(ctx, s.location, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to upload %v: %w", s.location, err)
	}
	return nil
}

// Release removes the temporary host file
func (s *Staged) Release(ctx context.Context) {
	if !s.remote {
		return
	}
	_ = s.service.fs.Delete(ctx, s.Path)
}

// IsLocal returns true for plain paths and file:// URLs
func IsLocal(location string) bool {
	if !strings.Contains(location, "://") {
		return true
	}
	return url.Scheme(location, file.Scheme) == file.Scheme
}

// Source returns a host path holding the content of location
func (s *Service) Source(ctx context.Context, location string) (*Staged, error) {
	if IsLocal(location) {
		return &Staged{Path: hostPath(location), location: location, service: s}, nil
	}
	data, err := s.fs.DownloadWithURL(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("failed to download %v: %w", location, err)
	}
	staged := s.temp(location)
	if err = s.fs.Upload(ctx, staged.Path, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("failed to stage %v: %w", location, err)
	}
	return staged, nil
}

// Destination returns a host path the bridge writes to; Commit publishes it to location
func (s *Service) Destination(location string) *Staged {
	if IsLocal(location) {
		return &Staged{Path: hostPath(location), location: location, service: s}
	}
	return s.temp(location)
}

func (s *Service) temp(location string) *Staged {
	name := "android-mcp-" + uuid.New().String() + path.Ext(location)
	return &Staged{Path: path.Join(s.tempDir, name), location: location, remote: true, service: s}
}

func hostPath(location string) string {
	if strings.Contains(location, "://") {
		return url.Path(location)
	}
	return location
}

// New creates a stage service
func New(fs afs.Service) *Service {
	if fs == nil {
		fs = afs.New()
	}
	return &Service{fs: fs, tempDir: os.TempDir()}
}
