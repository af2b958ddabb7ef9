package console

import (
	"bufio"
	"context"
	"errors"
	"io"
	"sync"
)

// MaxLineBytes bounds a single input line. Longer lines are discarded whole.
const MaxLineBytes = 4096

// ErrLineTooLong is returned by ReadLine in place of a line longer than
// MaxLineBytes. The reader stays usable and continues with the next line.
var ErrLineTooLong = errors.New("input line is too long")

type lineResult struct {
	line string
	err  error
}

// LineReader yields newline-terminated lines from any io.Reader, so a session can
// be driven from os.Stdin or from a scripted strings.Reader alike.
//
// The underlying read runs in its own goroutine; ReadLine waits on it together
// with ctx, which is what lets an interrupt end a prompt that is still blocked.
// Once a ReadLine has returned because ctx was done, the goroutine stays parked
// on the pending line; the LineReader must not be reused after that.
type LineReader struct {
	src   io.Reader
	once  sync.Once
	lines chan lineResult
}

// NewLineReader wraps r. Nothing is read until the first ReadLine call.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{src: r, lines: make(chan lineResult)}
}

func (r *LineReader) scan() {
	defer close(r.lines)
	br := bufio.NewReaderSize(r.src, MaxLineBytes)
	for {
		line, isPrefix, err := br.ReadLine()
		if err != nil {
			r.lines <- lineResult{err: err}
			return
		}
		if !isPrefix {
			r.lines <- lineResult{line: string(line)}
			continue
		}
		for isPrefix && err == nil {
			_, isPrefix, err = br.ReadLine()
		}
		r.lines <- lineResult{err: ErrLineTooLong}
		if err != nil {
			r.lines <- lineResult{err: err}
			return
		}
	}
}

// ReadLine blocks until a line is available, the source ends (io.EOF or the
// read error) or ctx is done (ctx.Err()). The line ending, "\n" or "\r\n", is
// stripped. An over-long line yields ErrLineTooLong.
func (r *LineReader) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
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
