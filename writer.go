package fpidioms

import (
	"bytes"
	"io"
)

// WriteFunc is a functional binding for io.Writer. The demonstrations write
// through it so callers can redirect, prefix or capture their output without
// a buffer type of their own.
//
// Example:
//
//	var lines []string
//	w := WriteFunc(func(p []byte) (int, error) {
//	    lines = append(lines, string(p))
//	    return len(p), nil
//	})
//	PrintItemActions(w).Invoke(item)
type WriteFunc func(p []byte) (n int, err error)

// Write implements io.Writer.
func (f WriteFunc) Write(p []byte) (int, error) {
	return f(p)
}

// Empty returns a writer that reports every write as complete and keeps
// nothing. Quiet output is built on it.
func (f WriteFunc) Empty() WriteFunc {
	return func(p []byte) (int, error) {
		return len(p), nil
	}
}

// Tee writes to f and then to each of others in order, stopping at the
// first error or short write.
func (f WriteFunc) Tee(others ...WriteFunc) WriteFunc {
	all := append([]WriteFunc{f}, others...)
	return func(p []byte) (int, error) {
		for _, w := range all {
			n, err := w(p)
			if err != nil {
				return n, err
			}
			if n != len(p) {
				return n, io.ErrShortWrite
			}
		}
		return len(p), nil
	}
}

// Map transforms bytes before writing. The caller is told the original
// length was written.
func (f WriteFunc) Map(transform func([]byte) []byte) WriteFunc {
	return func(p []byte) (int, error) {
		n, err := f(transform(p))
		if err != nil {
			return n, err
		}
		return len(p), nil
	}
}

// Indent prefixes every line written with prefix.
func (f WriteFunc) Indent(prefix string) WriteFunc {
	atLineStart := true
	return f.Map(func(p []byte) []byte {
		var out bytes.Buffer
		for _, b := range p {
			if atLineStart {
				out.WriteString(prefix)
			}
			out.WriteByte(b)
			atLineStart = b == '\n'
		}
		return out.Bytes()
	})
}

// NewWriter adapts any io.Writer.
func NewWriter(w io.Writer) WriteFunc {
	return w.Write
}
