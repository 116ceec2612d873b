// Package dirsize computes the total size of a directory tree.
//
// The traversal reads directory listings with lstat semantics: symbolic links
// are never followed. Under the default files-only policy links and other
// non-regular entries contribute zero; with WithDirEntrySizes every visited
// entry contributes whatever size the filesystem reports for it, the root
// directory included.
package dirsize

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
)

// TraversalError reports that the root itself could not be aggregated:
// missing, not a directory, or its listing unreadable. Aggregate still
// returns the partial sum collected before the failure.
type TraversalError struct {
	Path string
	Err  error
}

func (e *TraversalError) Error() string {
	return fmt.Sprintf("dirsize: traversal of %s failed: %v", e.Path, e.Err)
}

func (e *TraversalError) Unwrap() error {
	return e.Err
}

// EntryError reports a recoverable per-entry failure: the entry's metadata or
// a subdirectory's listing could not be read. The entry contributes zero and
// traversal continues.
type EntryError struct {
	Path string
	Err  error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("dirsize: skipping %s: %v", e.Path, e.Err)
}

func (e *EntryError) Unwrap() error {
	return e.Err
}

// ErrNotDirectory is wrapped into a TraversalError when the root path exists
// but is not a directory.
var ErrNotDirectory = errors.New("not a directory")

type aggregator struct {
	total     uint64
	dirSizes  bool
	handleErr func(*EntryError)
}

// Option configures Aggregate.
type Option func(*aggregator)

// WithDirEntrySizes makes every visited entry contribute its own reported
// size, directories and the root included. Without it only regular files
// count. Directory sizes are filesystem metadata, so totals computed with
// this option exceed the sum of file contents.
func WithDirEntrySizes() Option {
	return func(a *aggregator) {
		a.dirSizes = true
	}
}

// WithErrorHandler replaces the default handler (stdlib log) for recovered
// per-entry errors.
func WithErrorHandler(h func(*EntryError)) Option {
	return func(a *aggregator) {
		a.handleErr = h
	}
}

// Total returns the combined size in bytes of all regular files under root.
// Directories are recursed into but contribute no size of their own; symlinks
// and other special entries contribute zero.
func Total(root string) (uint64, error) {
	return Aggregate(root)
}

// TotalWithDirs returns the combined reported size of every entry under root,
// including each directory's own metadata size and the root's. An empty
// directory therefore yields the root's own reported size rather than zero.
func TotalWithDirs(root string) (uint64, error) {
	return Aggregate(root, WithDirEntrySizes())
}

// Aggregate walks the tree under root depth-first and sums entry sizes
// according to the configured policy. Per-entry failures are delivered to the
// error handler and the traversal continues; only a failure on the root
// itself is returned, together with the partial sum collected so far.
func Aggregate(root string, options ...Option) (uint64, error) {
	a := aggregator{handleErr: logEntryError}
	for _, option := range options {
		option(&a)
	}

	info, err := osStat(root)
	if err != nil {
		return 0, &TraversalError{Path: root, Err: err}
	}
	if !info.IsDir() {
		return 0, &TraversalError{Path: root, Err: ErrNotDirectory}
	}
	if a.dirSizes {
		a.total += uint64(info.Size())
	}

	entries, err := osReadDir(root)
	if err != nil {
		return a.total, &TraversalError{Path: root, Err: err}
	}
	a.visitAll(root, entries)
	return a.total, nil
}

func (a *aggregator) visitAll(dir string, entries []osDirEntry) {
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		switch {
		case entry.IsDir():
			if a.dirSizes {
				a.addSize(path, entry)
			}
			a.descend(path)
		case entry.Type().IsRegular():
			a.addSize(path, entry)
		default:
			// Symlinks, devices, sockets. Never followed.
			if a.dirSizes {
				a.addSize(path, entry)
			}
		}
	}
}

func (a *aggregator) descend(dir string) {
	entries, err := osReadDir(dir)
	if err != nil {
		a.handleErr(&EntryError{Path: dir, Err: err})
		return
	}
	a.visitAll(dir, entries)
}

func (a *aggregator) addSize(path string, entry osDirEntry) {
	info, err := entry.Info()
	if err != nil {
		a.handleErr(&EntryError{Path: path, Err: err})
		return
	}
	if info == nil {
		return
	}
	a.total += uint64(info.Size())
}

func logEntryError(err *EntryError) {
	log.Printf("%v", err)
}
