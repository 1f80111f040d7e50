package cart

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/bennett-mcdowell/F25-Team03/internal/domain"
	"github.com/bennett-mcdowell/F25-Team03/internal/logx"
)

// FileStore keeps the cart snapshot as a JSON array in a single file, the
// durable client storage the cart survives restarts through.
type FileStore struct {
	path   string
	logger logx.Logger
}

// NewFileStore creates a FileStore at path.
func NewFileStore(path string, logger logx.Logger) *FileStore {
	if logger == nil {
		logger = logx.Nop()
	}
	return &FileStore{path: path, logger: logger}
}

// Load reads the snapshot. A missing file is an empty cart. A corrupt
// snapshot is discarded and removed, also yielding an empty cart.
func (s *FileStore) Load() ([]domain.CartItem, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read cart snapshot: %w", err)
	}

	var items []domain.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		s.logger.Debug("discarding corrupt cart snapshot",
			logx.String("path", s.path),
			logx.Any("err", err),
		)
		if rmErr := os.Remove(s.path); rmErr != nil {
			s.logger.Debug("remove corrupt cart snapshot failed",
				logx.String("path", s.path),
				logx.Any("err", rmErr),
			)
		}
		return nil, nil
	}
	return items, nil
}

// Save writes the full snapshot atomically (write temp, rename).
func (s *FileStore) Save(items []domain.CartItem) error {
	if items == nil {
		items = []domain.CartItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode cart snapshot: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write cart snapshot: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace cart snapshot: %w", err)
	}
	return nil
}

var _ Store = (*FileStore)(nil)
