package loader

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/robbyt/go-polyquad/internal/helpers"
)

// FromDisk loads an expression from a file. The file holds a single
// expression; surrounding whitespace is ignored by the compilers.
type FromDisk struct {
	path      string
	sourceURL *url.URL
}

// NewFromDisk creates a loader for path. Relative paths are resolved against
// the working directory.
func NewFromDisk(path string) (*FromDisk, error) {
	path = strings.TrimPrefix(path, "file://")

	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return nil, fmt.Errorf("%w: %s", ErrSchemeUnsupported, path)
	}

	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("%w: path is empty", ErrExpressionUnavailable)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("unable to resolve path: %w", err)
	}
	if abs == "/" {
		return nil, fmt.Errorf("%w: path is invalid", ErrExpressionUnavailable)
	}

	u := &url.URL{Scheme: "file", Path: abs}
	return &FromDisk{
		path:      abs,
		sourceURL: u,
	}, nil
}

func (l *FromDisk) String() string {
	noChkSum := fmt.Sprintf("loader.FromDisk{Path: %s}", l.path)

	reader, err := l.GetReader()
	if err != nil {
		return noChkSum
	}
	defer reader.Close()

	chksum, err := helpers.SHA256Reader(reader)
	if err != nil {
		return noChkSum
	}
	return fmt.Sprintf("loader.FromDisk{Path: %s, SHA256: %s}", l.path, chksum[:8])
}

func (l *FromDisk) GetReader() (io.ReadCloser, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExpressionUnavailable, err)
	}
	return f, nil
}

// GetSourceURL returns the source URL of the expression.
func (l *FromDisk) GetSourceURL() *url.URL {
	return l.sourceURL
}
