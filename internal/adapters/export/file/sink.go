package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/bnema/lapwatch/internal/domain"
	"github.com/bnema/lapwatch/internal/ports"
)

const (
	exportDirMode   = 0o700
	exportFileMode  = 0o600
	maxNameAttempts = 1000
)

// Sink writes export documents into a directory, one file per export. A
// second export on the same day gets a numeric suffix instead of replacing
// the first.
type Sink struct {
	dir   string
	codec Codec
	mu    sync.Mutex
}

var _ ports.ExportSink = (*Sink)(nil)

func NewSink(dir string, format string) (*Sink, error) {
	if dir == "" {
		return nil, errors.New("export directory is empty")
	}

	codec, err := CodecFor(format)
	if err != nil {
		return nil, err
	}

	return &Sink{dir: filepath.Clean(dir), codec: codec}, nil
}

func (s *Sink) Save(ctx context.Context, doc domain.ExportDocument) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := s.codec.Encode(doc)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, exportDirMode); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}

	stem := doc.FileStem()
	for attempt := 0; attempt < maxNameAttempts; attempt++ {
		name := stem
		if attempt > 0 {
			name += "-" + strconv.Itoa(attempt)
		}
		path := filepath.Join(s.dir, name+"."+s.codec.Extension())

		err := writeExclusive(path, data)
		if errors.Is(err, os.ErrExist) {
			continue
		}
		if err != nil {
			return "", err
		}

		return path, nil
	}

	return "", fmt.Errorf("no free export file name for %s in %s", stem, s.dir)
}

// Load reads an export file written by any Sink, choosing the codec from the
// file extension.
func Load(path string) (domain.ExportDocument, error) {
	codec, err := CodecForPath(path)
	if err != nil {
		return domain.ExportDocument{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return domain.ExportDocument{}, fmt.Errorf("read export file: %w", err)
	}

	return codec.Decode(data)
}

func writeExclusive(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, exportFileMode)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return err
		}
		return fmt.Errorf("create export file: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return fmt.Errorf("write export file: %w", err)
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("close export file: %w", err)
	}

	return nil
}
