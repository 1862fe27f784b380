package mem

import (
	"io"
	"sync"
	"time"

	"github.com/klauspost/compress/s2"

	"github.com/vfskit/vfs"
)

const (
	blockShift = 12
	blockSize  = 1 << blockShift // 4 KiB
	blockMask  = blockSize - 1
)

// zeroBlock backs never-written blocks. Read-only.
var zeroBlock = make([]byte, blockSize)

// store holds the byte content of one in-memory file in fixed-size blocks. A
// nil block reads as zeros, so sparse writes cost nothing for the gap. With
// compress set, non-nil blocks are held s2-compressed and are decompressed on
// read and recompressed on write-back; callers see exact byte-for-byte content
// either way.
//
// A store is shared by the registry (by name) and by every open channel
// referencing it; its mutex guards content, so a rejected write never leaves
// partial bytes behind. Cursor state lives in the channels, not here.
type store struct {
	mu           sync.RWMutex
	name         string
	length       int64
	blocks       [][]byte
	readOnly     bool
	compress     bool
	lastModified time.Time
}

func newStore(name string, compress bool) *store {
	return &store{
		name:         name,
		compress:     compress,
		lastModified: time.Now(),
	}
}

// Size returns the current length in bytes.
func (s *store) Size() (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.length, nil
}

// ReadAt implements io.ReaderAt. A read starting at or past the current length
// returns 0, io.EOF; a read ending past it returns the available bytes together
// with io.EOF.
func (s *store) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 {
		return 0, vfs.ErrNegativeOffset
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if off >= s.length {
		return 0, io.EOF
	}

	n := len(p)
	if rest := s.length - off; int64(n) > rest {
		n = int(rest)
	}

	read := 0
	for read < n {
		pos := off + int64(read)
		bi := int(pos >> blockShift)
		bo := int(pos & blockMask)

		// the block table can be shorter than the length after a growing
		// truncate; missing blocks read as zeros
		src := zeroBlock
		if b := s.blockAt(bi); b != nil {
			if s.compress {
				raw, err := s2.Decode(nil, b)
				if err != nil {
					return read, err
				}
				src = raw
			} else {
				src = b
			}
		}
		read += copy(p[read:n], src[bo:])
	}

	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// WriteAt implements io.WriterAt. Writing past the current length grows the
// store, with the gap between old length and off reading as zeros. A write on a
// read-only store fails with ErrReadOnly and changes nothing.
func (s *store) WriteAt(p []byte, off int64) (int, error) {
	if off < 0 {
		return 0, vfs.ErrNegativeOffset
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.readOnly {
		return 0, vfs.ErrReadOnly
	}
	if len(p) == 0 {
		return 0, nil
	}

	end := off + int64(len(p))
	s.growBlocks(end)

	written := 0
	for written < len(p) {
		pos := off + int64(written)
		bi := int(pos >> blockShift)
		bo := int(pos & blockMask)

		raw := s.rawBlock(bi)
		c := copy(raw[bo:], p[written:])
		s.storeBlock(bi, raw)
		written += c
	}

	if end > s.length {
		s.length = end
	}
	s.lastModified = time.Now()
	return written, nil
}

// Truncate shrinks or grows the store to exactly size. Shrinking discards bytes
// beyond size; growing leaves the new tail reading as zeros.
func (s *store) Truncate(size int64) error {
	if size < 0 {
		return vfs.ErrNegativeOffset
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if size < s.length {
		keep := int((size + blockMask) >> blockShift)
		if keep < len(s.blocks) {
			s.blocks = s.blocks[:keep]
		}
		// zero the tail of the boundary block so a later grow does not
		// resurrect discarded bytes
		if bo := int(size & blockMask); bo != 0 && keep-1 < len(s.blocks) && s.blocks[keep-1] != nil {
			raw := s.rawBlock(keep - 1)
			copy(raw[bo:], zeroBlock)
			s.storeBlock(keep-1, raw)
		}
	}
	s.length = size
	s.lastModified = time.Now()
	return nil
}

// setReadOnly marks the store read-only and reports success.
func (s *store) setReadOnly() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.readOnly = true
	return true
}

func (s *store) canWrite() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.readOnly
}

func (s *store) getLastModified() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastModified
}

// setName records the store's new name on rename.
func (s *store) setName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *store) getName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

// growBlocks extends the block table to cover length end. New slots stay nil
// and read as zeros.
func (s *store) growBlocks(end int64) {
	needed := int((end + blockMask) >> blockShift)
	for len(s.blocks) < needed {
		s.blocks = append(s.blocks, nil)
	}
}

// blockAt returns the stored block bi, or nil when the slot is missing or
// was never written.
func (s *store) blockAt(bi int) []byte {
	if bi >= len(s.blocks) {
		return nil
	}
	return s.blocks[bi]
}

// rawBlock returns block bi as a writable raw block, decompressing or
// allocating as needed. Callers must hand the slice back via storeBlock.
func (s *store) rawBlock(bi int) []byte {
	b := s.blockAt(bi)
	if b == nil {
		return make([]byte, blockSize)
	}
	if s.compress {
		raw, err := s2.Decode(nil, b)
		if err != nil || len(raw) != blockSize {
			// stored by storeBlock, so this cannot fail on intact memory
			return make([]byte, blockSize)
		}
		return raw
	}
	return b
}

// storeBlock writes a raw block back into slot bi, compressing when enabled.
func (s *store) storeBlock(bi int, raw []byte) {
	if s.compress {
		s.blocks[bi] = s2.Encode(nil, raw)
	} else {
		s.blocks[bi] = raw
	}
}
