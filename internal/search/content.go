package search

import (
	"bufio"
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	fsutil "github.com/kk-code-lab/vuit/internal/fs"
	"github.com/kk-code-lab/vuit/internal/textutil"
	"golang.org/x/sync/errgroup"
)

const sniffSize = 4096

// Job is a running content search. Progress is published through an atomic
// counter; the result slot is filled once after every file has been scanned
// and can be taken exactly once.
type Job struct {
	query    string
	total    int
	progress atomic.Int64
	done     chan struct{}

	mu      sync.Mutex
	results []ContentMatch
	ready   bool
	taken   bool
}

// StartContentSearch scans files (relative to root) for lines containing
// query, case-insensitively, on a background goroutine. Matches are ordered
// by position in files, then by line. A job cannot be cancelled.
func StartContentSearch(root string, files []string, query string) *Job {
	job := &Job{
		query: query,
		total: len(files),
		done:  make(chan struct{}),
	}

	if query == "" || len(files) == 0 {
		job.progress.Store(int64(len(files)))
		job.finish(nil)
		return job
	}

	paths := make([]string, len(files))
	copy(paths, files)
	go job.run(root, paths)
	return job
}

func (j *Job) run(root string, files []string) {
	started := time.Now()
	needle := strings.ToLower(j.query)
	perFile := make([][]ContentMatch, len(files))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, rel := range files {
		i, rel := i, rel
		g.Go(func() error {
			defer j.progress.Add(1)
			matches, err := scanFile(filepath.Join(root, filepath.FromSlash(rel)), rel, needle)
			if err != nil {
				log.Printf("content search: skip %s: %v", rel, err)
				return nil
			}
			perFile[i] = matches
			return nil
		})
	}
	_ = g.Wait()

	count := 0
	for _, matches := range perFile {
		count += len(matches)
	}
	results := make([]ContentMatch, 0, count)
	for _, matches := range perFile {
		results = append(results, matches...)
	}

	log.Printf("content search %q: %d matches in %d files (%s)", j.query, len(results), len(files), time.Since(started).Round(time.Millisecond))
	j.finish(results)
}

func (j *Job) finish(results []ContentMatch) {
	j.mu.Lock()
	j.results = results
	j.ready = true
	j.mu.Unlock()
	close(j.done)
}

// Total returns the number of files the job scans.
func (j *Job) Total() int { return j.total }

// Progress returns the number of files scanned so far.
func (j *Job) Progress() int { return int(j.progress.Load()) }

// Done is closed once the result slot is filled.
func (j *Job) Done() <-chan struct{} { return j.done }

// Take returns the matches once the job has finished. Only the first call
// after completion reports true.
func (j *Job) Take() ([]ContentMatch, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if !j.ready || j.taken {
		return nil, false
	}
	j.taken = true
	results := j.results
	j.results = nil
	return results, true
}

// scanFile returns the lines of path containing needle (already lower-case).
// Files that sniff as binary yield no matches.
func scanFile(path, rel, needle string) ([]ContentMatch, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	reader := bufio.NewReaderSize(f, 64*1024)
	head, err := reader.Peek(sniffSize)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return nil, err
	}
	if !fsutil.IsTextFile(path, head) {
		return nil, nil
	}

	var matches []ContentMatch
	lineNo := 0
	for {
		line, readErr := reader.ReadString('\n')
		if line != "" {
			lineNo++
			line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
			if strings.Contains(strings.ToLower(line), needle) {
				matches = append(matches, ContentMatch{
					Path: rel,
					Line: lineNo,
					Text: textutil.CleanDisplay(line),
				})
			}
		}
		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				return matches, nil
			}
			return matches, readErr
		}
	}
}
