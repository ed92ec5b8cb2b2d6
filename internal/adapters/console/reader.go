package console

import (
	"bufio"
	"context"
	"io"
	"sync"
)

type scanResult struct {
	line string
	err  error
}

// LineReader reads player input one line at a time. A single goroutine owns the
// scanner so a pending read can be abandoned when the context is done.
type LineReader struct {
	s     *bufio.Scanner
	once  sync.Once
	lines chan scanResult
}

func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{s: bufio.NewScanner(r), lines: make(chan scanResult)}
}

// ReadLine returns the next line without its terminator, io.EOF once input ends,
// or ctx.Err() if ctx is done first.
func (r *LineReader) ReadLine(ctx context.Context) (string, error) {
	r.once.Do(func() { go r.scan() })
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res, ok := <-r.lines:
		if !ok {
			return "", io.EOF
		}
		return res.line, res.err
	}
}

func (r *LineReader) scan() {
	defer close(r.lines)
	for r.s.Scan() {
		r.lines <- scanResult{line: r.s.Text()}
	}
	if err := r.s.Err(); err != nil {
		r.lines <- scanResult{err: err}
	}
}
