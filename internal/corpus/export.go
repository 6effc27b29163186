package corpus

import (
	"bytes"
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/FocuswithJustin/gabc2volpiano/core/cache"
	"github.com/FocuswithJustin/gabc2volpiano/core/digest"
	"github.com/FocuswithJustin/gabc2volpiano/core/errors"
	"github.com/FocuswithJustin/gabc2volpiano/core/sqlite"
	"github.com/FocuswithJustin/gabc2volpiano/core/volpiano"
	"github.com/FocuswithJustin/gabc2volpiano/internal/logging"
	"github.com/FocuswithJustin/gabc2volpiano/internal/source"
	"github.com/FocuswithJustin/gabc2volpiano/internal/validation"
)

// Summary reports the outcome of an export run.
type Summary struct {
	RunID     string `json:"run_id"`
	Files     int    `json:"files"`
	Converted int    `json:"converted"`
	Failed    int    `json:"failed"`
	// Cached counts files whose content matched an earlier file of the run.
	Cached int `json:"cached"`
}

// Export converts every GABC source under root and records the results in
// store. Conversion failures are stored per chant and do not stop the run.
// Cancelling ctx stops the walk before the next file.
func Export(ctx context.Context, root string, store *Store, conv *volpiano.Converter) (*Summary, error) {
	dir, err := validation.ValidateDir(root)
	if err != nil {
		return nil, errors.NewIO("open", root, err)
	}
	if conv == nil {
		conv = volpiano.NewConverter()
	}

	paths, err := Discover(dir)
	if err != nil {
		return nil, err
	}

	run := &Run{
		ID:        uuid.New().String(),
		StartedAt: time.Now(),
		Root:      dir,
		Driver:    sqlite.DriverType(),
	}
	if err := store.insertRun(ctx, run); err != nil {
		return nil, err
	}
	ctx = logging.WithRunID(ctx, run.ID)
	logging.InfoContext(ctx, "export_started", "root", dir, "files", len(paths), "db", store.Path())

	summary := &Summary{RunID: run.ID}
	seen := cache.NewChantCache(cache.Config{MaxSize: len(paths)})
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		rec, fields, err := convertOne(ctx, dir, path, conv, seen)
		if err != nil {
			return summary, err
		}
		rec.RunID = run.ID
		if err := store.insertChant(ctx, rec, fields); err != nil {
			return summary, err
		}

		summary.Files++
		if rec.Error != "" {
			summary.Failed++
		} else {
			summary.Converted++
		}
	}

	summary.Cached = int(seen.Stats().Hits)
	logging.InfoContext(ctx, "export_finished",
		"converted", summary.Converted, "failed", summary.Failed, "cached", summary.Cached)
	return summary, nil
}

// Discover returns the GABC sources under root in lexical order.
func Discover(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !source.IsSource(d.Name()) {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, errors.NewIO("walk", root, err)
	}
	return paths, nil
}

// convertOne reads and converts a single file. Only unreadable files return
// an error; conversion failures are recorded in the Record. Files whose
// BLAKE3 digest is already in seen reuse the earlier result.
func convertOne(ctx context.Context, root, path string, conv *volpiano.Converter, seen *cache.ChantCache) (*Record, []HeaderField, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, errors.NewIO("read", path, err)
	}

	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	sums := digest.Sum(raw)
	rec := &Record{
		ID:     uuid.New().String(),
		Path:   filepath.ToSlash(rel),
		SHA256: sums.SHA256,
		BLAKE3: sums.BLAKE3,
	}

	start := time.Now()
	result, ok := seen.Get(sums.BLAKE3)
	if !ok {
		chant, err := convertSource(raw, conv)
		result = cache.Result{Chant: chant, Err: err}
		seen.Put(sums.BLAKE3, result)
	}
	chant, err := result.Chant, result.Err
	if err != nil {
		rec.Error = err.Error()
		logging.ConversionFailed(ctx, rec.Path, err)
		return rec, nil, nil
	}

	rec.Name = chant.Header.Value("name")
	rec.OfficePart = chant.Header.Value("office-part")
	rec.Mode = chant.Header.Value("mode")
	rec.Text = chant.Text
	rec.Volpiano = chant.Volpiano

	var fields []HeaderField
	for _, key := range chant.Header.Keys() {
		fields = append(fields, HeaderField{Key: key, Value: chant.Header.Value(key)})
	}

	logging.ConversionDone(ctx, rec.Path, len(chant.Volpiano), time.Since(start))
	return rec, fields, nil
}

func convertSource(raw []byte, conv *volpiano.Converter) (*volpiano.Chant, error) {
	text, err := source.Read(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	return conv.ConvertFile(text)
}
