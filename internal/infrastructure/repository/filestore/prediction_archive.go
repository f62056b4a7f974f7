package filestore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/nba-projection/internal/domain/prediction"
)

// PredictionArchive stores each slate as {dir}/{date}_projections.json.
type PredictionArchive struct {
	dir string
	mu  sync.Mutex
}

func NewPredictionArchive(dir string) *PredictionArchive {
	return &PredictionArchive{dir: dir}
}

func (a *PredictionArchive) path(date string) string {
	return filepath.Join(a.dir, date+"_projections.json")
}

// Save refuses to replace an existing date unless overwrite is set. The file is
// written to a temp name and renamed so readers never see a partial archive.
func (a *PredictionArchive) Save(ctx context.Context, archive prediction.Archive, overwrite bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := archive.Validate(); err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	target := a.path(archive.Date)
	if !overwrite {
		if _, err := os.Stat(target); err == nil {
			return fmt.Errorf("%w: %s", prediction.ErrArchiveExists, target)
		}
	}

	payload, err := sonic.ConfigStd.MarshalIndent(archive, "", "  ")
	if err != nil {
		return fmt.Errorf("encode prediction archive date=%s: %w", archive.Date, err)
	}
	if err := os.MkdirAll(a.dir, 0o755); err != nil {
		return fmt.Errorf("create archive dir: %w", err)
	}

	tmp, err := os.CreateTemp(a.dir, "."+archive.Date+"-*.json")
	if err != nil {
		return fmt.Errorf("create temp archive: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(payload); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp archive: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp archive: %w", err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return fmt.Errorf("publish archive %s: %w", target, err)
	}
	return nil
}

func (a *PredictionArchive) Get(ctx context.Context, date string) (prediction.Archive, bool, error) {
	if err := ctx.Err(); err != nil {
		return prediction.Archive{}, false, err
	}

	raw, err := os.ReadFile(a.path(date))
	if errors.Is(err, fs.ErrNotExist) {
		return prediction.Archive{}, false, nil
	}
	if err != nil {
		return prediction.Archive{}, false, fmt.Errorf("read archive date=%s: %w", date, err)
	}

	var archive prediction.Archive
	if err := sonic.Unmarshal(raw, &archive); err != nil {
		return prediction.Archive{}, false, fmt.Errorf("decode archive date=%s: %w", date, err)
	}
	return archive, true, nil
}
