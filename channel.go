package vfs

import (
	"io"
	"sync"
)

// PositionalChannel implements Channel over any OffsetIO. It owns the cursor
// for one open handle and serializes every position-dependent operation under a
// single handle-scoped mutex, so interleaved calls from callers sharing the
// handle are linearized. Channels opened separately onto the same OffsetIO have
// independent cursors and independent locks; the layer provides no cross-handle
// isolation beyond what the OffsetIO itself guarantees.
type PositionalChannel struct {
	mu       sync.Mutex
	io       OffsetIO
	position int64
	readOnly bool
	closed   bool
}

// NewPositionalChannel returns a channel over oio with the cursor at zero. A
// read-only channel rejects Write and Truncate with ErrReadOnly.
func NewPositionalChannel(oio OffsetIO, mode Mode) *PositionalChannel {
	return &PositionalChannel{
		io:       oio,
		readOnly: mode == ReadOnly,
	}
}

// Position returns the current cursor.
func (c *PositionalChannel) Position() (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return 0, ErrChannelClosed
	}
	return c.position, nil
}

// Seek implements io.Seeker. Seeking past end-of-file is legal and does not by
// itself grow the file.
func (c *PositionalChannel) Seek(offset int64, whence int) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return 0, ErrChannelClosed
	}

	var position int64
	switch whence {
	case io.SeekStart:
		position = offset
	case io.SeekCurrent:
		position = c.position + offset
	case io.SeekEnd:
		size, err := c.io.Size()
		if err != nil {
			return 0, err
		}
		position = size + offset
	default:
		return 0, ErrSeekInvalidWhence
	}

	if position < 0 {
		return 0, ErrSeekInvalidOffset
	}

	c.position = position
	return position, nil
}

// Read implements io.Reader. The cursor advances only by the number of bytes
// actually read; a read at or past end-of-file returns io.EOF with the cursor
// unmoved.
func (c *PositionalChannel) Read(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return 0, ErrChannelClosed
	}
	if len(p) == 0 {
		return 0, nil
	}

	n, err := c.io.ReadAt(p, c.position)
	if n > 0 {
		c.position += int64(n)
		// partial read at the tail of the file is not an error for a
		// sequential reader; the next Read reports io.EOF
		if err == io.EOF {
			err = nil
		}
	}
	return n, err
}

// Write implements io.Writer. Bytes land at the current cursor; writing past
// end-of-file grows the file, zero-filling the gap. The cursor advances only by
// the number of bytes actually written.
func (c *PositionalChannel) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return 0, ErrChannelClosed
	}
	if c.readOnly {
		return 0, ErrReadOnly
	}

	n, err := c.io.WriteAt(p, c.position)
	if n > 0 {
		c.position += int64(n)
	}
	return n, err
}

// Truncate changes the length of the underlying file to size. If size is below
// the current cursor, the cursor is pulled back to size so a subsequent write
// does not leave a sparse gap at the old offset.
func (c *PositionalChannel) Truncate(size int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrChannelClosed
	}
	if c.readOnly {
		return ErrReadOnly
	}

	if err := c.io.Truncate(size); err != nil {
		return err
	}
	if size < c.position {
		c.position = size
	}
	return nil
}

// Size returns the current length of the underlying file.
func (c *PositionalChannel) Size() (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return 0, ErrChannelClosed
	}
	return c.io.Size()
}

// Close implements io.Closer, closing the underlying OffsetIO if it is itself
// an io.Closer. Close is idempotent.
func (c *PositionalChannel) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	if closer, ok := c.io.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
