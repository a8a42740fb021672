package report

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/charlievieth/fastwalk"

	"github.com/daptify14/tabgeom/internal/config"
	"github.com/daptify14/tabgeom/internal/scenario"
)

const checkWorkers = 4

var errCheckCanceled = errors.New("check canceled")

// skipDirs are never descended into.
var skipDirs = map[string]struct{}{
	".git":         {},
	"node_modules": {},
	"vendor":       {},
	"testdata":     {},
}

// Result is the outcome of loading one scenario file.
type Result struct {
	Path string
	Err  error
}

func (r Result) OK() bool { return r.Err == nil }

// Check loads and lays out every *.yaml and *.yml scenario under root.
// Results are sorted by path. The returned error is only non-nil when the
// walk itself fails.
func Check(ctx context.Context, root string) ([]Result, error) {
	root = filepath.Clean(root)
	var (
		mu      sync.Mutex
		results []Result
	)

	conf := &fastwalk.Config{
		NumWorkers: checkWorkers,
		Follow:     false,
		Sort:       fastwalk.SortNone,
	}
	walkFn := func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return errCheckCanceled
		default:
		}
		if d.IsDir() {
			if _, skip := skipDirs[d.Name()]; skip && path != root {
				return fs.SkipDir
			}
			return nil
		}
		if !isScenarioFile(path) {
			return nil
		}

		res := Result{Path: path, Err: checkFile(path)}
		mu.Lock()
		results = append(results, res)
		mu.Unlock()
		return nil
	}

	if err := fastwalk.Walk(conf, root, fastwalk.IgnorePermissionErrors(walkFn)); err != nil {
		if errors.Is(err, errCheckCanceled) {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Path < results[j].Path })
	return results, nil
}

func isScenarioFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func checkFile(path string) error {
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return err
	}
	_, err = scenario.New(cfg)
	return err
}
