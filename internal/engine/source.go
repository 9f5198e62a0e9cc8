package engine

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/tartampluch/go-jalali/internal/config"
)

// ContactSource defines the contract for retrieving vCard data.
// This interface allows for mocking in tests.
type ContactSource interface {
	Open(ctx context.Context) (io.ReadCloser, error)
}

// FileSource reads vCards from a local file, or from Stdin when Path is "-".
type FileSource struct {
	Path string

	// Stdin replaces os.Stdin when set.
	Stdin io.Reader
}

// Open returns a reader over the vCard data. The caller must close it.
func (s FileSource) Open(ctx context.Context) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch s.Path {
	case "":
		return nil, errors.New(config.ErrLocalPathEmpty)
	case config.StdStream:
		slog.Debug("Reading vCards from stdin", config.LogKeyComponent, config.CompSource)
		if s.Stdin != nil {
			return io.NopCloser(s.Stdin), nil
		}
		return io.NopCloser(os.Stdin), nil
	}

	slog.Debug("Opening vCard file",
		config.LogKeyComponent, config.CompSource,
		config.LogKeyFile, s.Path,
	)
	return os.Open(s.Path)
}
