package driver

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"quill/internal/checker"
	"quill/internal/diag"
	"quill/internal/observ"
	"quill/internal/source"
)

// checkableExtensions lists the file types a directory walk picks up.
// Explicitly named files are always checked regardless of extension.
var checkableExtensions = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
}

// ListTextFiles returns the sorted checkable files under dir.
func ListTextFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && checkableExtensions[strings.ToLower(filepath.Ext(path))] {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// ExpandPaths resolves a mixed list of files and directories into the flat
// file list a run will check. Order is the argument order, directories
// expanded in place with their contents sorted.
func ExpandPaths(paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			// keep the path so the worker reports the read failure in-band
			files = append(files, path)
			continue
		}
		if info.IsDir() {
			inside, err := ListTextFiles(path)
			if err != nil {
				return nil, err
			}
			files = append(files, inside...)
			continue
		}
		files = append(files, path)
	}
	return files, nil
}

// CheckPaths checks every file named by paths in parallel. Results come back
// in input order. Per-file read failures surface as issues inside the
// result bags; only walk errors and context cancellation abort the run.
func CheckPaths(ctx context.Context, paths []string, cache *DiskCache, opts Options) (*source.FileSet, []FileResult, error) {
	files, err := ExpandPaths(paths)
	if err != nil {
		return nil, nil, err
	}

	base := ""
	if wd, err := os.Getwd(); err == nil {
		base = wd
	}
	fileSet := source.NewFileSetWithBase(base)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	if opts.NoCache {
		cache = nil
	}

	// FileSet appends are not goroutine-safe, so files are loaded up front
	// and only the checking runs in parallel.
	fileIDs := make([]source.FileID, len(files))
	loadErrs := make([]error, len(files))
	for i, path := range files {
		fileIDs[i], loadErrs[i] = fileSet.Load(path)
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]FileResult, len(files))
	var progressMu sync.Mutex
	emit := func(ev Event) {
		if opts.Progress == nil {
			return
		}
		progressMu.Lock()
		opts.Progress(ev)
		progressMu.Unlock()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			// each goroutine owns its index, no mutex needed
			results[i] = checkOne(fileSet, path, fileIDs[i], loadErrs[i], cache, opts)
			ev := Event{
				Path:   path,
				Index:  i,
				Total:  len(files),
				Issues: results[i].Bag.Len(),
				Cached: results[i].Cached,
			}
			if loadErrs[i] != nil {
				ev.Err = loadErrs[i]
			}
			emit(ev)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

func checkOne(fileSet *source.FileSet, path string, fileID source.FileID, loadErr error, cache *DiskCache, opts Options) FileResult {
	timer := observ.NewTimer()

	if loadErr != nil {
		bag := diag.NewBag(opts.Checker.MaxIssues)
		bag.Add(diag.NewError(diag.IOReadFailed, source.Span{}, "failed to read "+path+": "+loadErr.Error()))
		return FileResult{Path: path, Bag: bag, Timing: timer.Report()}
	}

	file := fileSet.Get(fileID)
	key := CacheKey(file.Hash, opts.Checker)

	if cache != nil {
		timer.Start("cache-get")
		var payload DiskPayload
		if hit, err := cache.Get(key, &payload); err == nil && hit {
			timer.Stop()
			return FileResult{
				Path:   path,
				FileID: fileID,
				Bag:    bagFromPayload(&payload, fileID, opts.Checker.MaxIssues),
				Cached: true,
				Timing: timer.Report(),
			}
		}
	}

	timer.Start("check")
	bag := checker.New(opts.Checker).Check(file)
	timer.Stop()

	if cache != nil {
		timer.Start("cache-put")
		// best effort: a failed write just means the next run rechecks
		_ = cache.Put(key, payloadFromBag(file.Hash, bag))
		timer.Stop()
	}

	return FileResult{
		Path:   path,
		FileID: fileID,
		Bag:    bag,
		Timing: timer.Report(),
	}
}

// TotalIssues sums the issues across a result set.
func TotalIssues(results []FileResult) int {
	total := 0
	for _, res := range results {
		total += res.Bag.Len()
	}
	return total
}
