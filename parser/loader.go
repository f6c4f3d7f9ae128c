package parser

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/activecm/synplot/util"
	log "github.com/sirupsen/logrus"
	"github.com/vbauerster/mpb"
	"github.com/vbauerster/mpb/decor"
)

// StdinPath selects standard input instead of a file
const StdinPath = "-"

// ErrIsDirectory is returned when the input path names a directory
var ErrIsDirectory = errors.New("input is a directory")

// Loader reads connection tables from files
type Loader struct {
	log      *log.Logger
	progress io.Writer
	stdin    io.Reader
}

// NewLoader creates a Loader which reports to the given logger
func NewLoader(logger *log.Logger) *Loader {
	return &Loader{log: logger, stdin: os.Stdin}
}

// WithProgress enables a progress bar written to w while files are read.
// A nil writer disables it.
func (l *Loader) WithProgress(w io.Writer) *Loader {
	l.progress = w
	return l
}

// Load reads the connection table stored at path. A missing file results
// in an error satisfying errors.Is(err, os.ErrNotExist) before any parsing
// takes place. Files ending in .gz are decompressed on the fly.
func (l *Loader) Load(path string) (*Table, error) {
	start := time.Now()

	if path == StdinPath {
		table, err := Read(l.stdin)
		if err != nil {
			return nil, err
		}
		l.logLoaded(path, table, start)
		return table, nil
	}

	if util.IsDir(path) {
		return nil, fmt.Errorf("%s: %w", path, ErrIsDirectory)
	}

	fileHandle, err := os.Open(path)
	if err != nil {
		l.log.WithFields(log.Fields{
			"path":  path,
			"error": err.Error(),
		}).Error("Could not open connection file")
		return nil, err
	}
	// the handle is released as soon as parsing finishes
	defer fileHandle.Close()

	var reader io.Reader = fileHandle

	var bar *progressBar
	if l.progress != nil {
		if info, statErr := fileHandle.Stat(); statErr == nil && info.Size() > 0 {
			bar = newProgressBar(l.progress, info.Size())
			reader = bar.wrap(reader)
		}
	}

	if util.IsGzip(path) {
		gzipReader, err := gzip.NewReader(reader)
		if err != nil {
			bar.finish()
			return nil, err
		}
		defer gzipReader.Close()
		reader = gzipReader
	}

	table, err := Read(reader)
	bar.finish()
	if err != nil {
		l.log.WithFields(log.Fields{
			"path":  path,
			"error": err.Error(),
		}).Error("Could not parse connection file")
		return nil, err
	}

	l.logLoaded(path, table, start)
	return table, nil
}

func (l *Loader) logLoaded(path string, table *Table, start time.Time) {
	l.log.WithFields(log.Fields{
		"path":    path,
		"records": table.Len(),
		"elapsed": time.Since(start).String(),
	}).Debug("Loaded connection records")
}

// progressBar tracks the bytes consumed from an input file
type progressBar struct {
	p     *mpb.Progress
	bar   *mpb.Bar
	total int64
	read  int64
}

func newProgressBar(w io.Writer, total int64) *progressBar {
	p := mpb.New(mpb.WithWidth(20), mpb.WithOutput(w))
	bar := p.AddBar(total,
		mpb.PrependDecorators(
			decor.Name("\t[-] Loading Connections:", decor.WC{W: 30, C: decor.DidentRight}),
			decor.CountersNoUnit(" %d / %d ", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(decor.Percentage()),
	)
	return &progressBar{p: p, bar: bar, total: total}
}

func (b *progressBar) wrap(r io.Reader) io.Reader {
	return &countingReader{r: r, bar: b}
}

// finish fills up the remainder of the bar so the progress container can
// shut down even when reading stopped early
func (b *progressBar) finish() {
	if b == nil {
		return
	}
	if remaining := b.total - b.read; remaining > 0 {
		b.bar.IncrBy(int(remaining))
	}
	b.p.Wait()
}

type countingReader struct {
	r   io.Reader
	bar *progressBar
}

func (c *countingReader) Read(p []byte) (int, error) {
	start := time.Now()
	n, err := c.r.Read(p)
	if n > 0 {
		c.bar.read += int64(n)
		c.bar.bar.IncrBy(n, time.Since(start))
	}
	return n, err
}
