package mem

import (
	"bytes"
	"io"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/vfskit/vfs"
)

/**********************************
 ************TESTS*****************
 **********************************/

type storeTestSuite struct {
	suite.Suite
	compress bool
}

func (s *storeTestSuite) newStore() *store {
	return newStore("memFS:/test", s.compress)
}

func (s *storeTestSuite) TestEmpty() {
	st := s.newStore()

	size, err := st.Size()
	s.NoError(err)
	s.Zero(size)

	_, err = st.ReadAt(make([]byte, 1), 0)
	s.ErrorIs(err, io.EOF)
}

func (s *storeTestSuite) TestWriteRead() {
	st := s.newStore()

	n, err := st.WriteAt([]byte{1, 2, 3}, 0)
	s.NoError(err)
	s.Equal(3, n)

	buf := make([]byte, 3)
	n, err = st.ReadAt(buf, 0)
	s.NoError(err)
	s.Equal(3, n)
	s.Equal([]byte{1, 2, 3}, buf)

	// mid-file offset
	n, err = st.ReadAt(buf[:1], 1)
	s.NoError(err)
	s.Equal(1, n)
	s.Equal(byte(2), buf[0])

	// at and past EOF
	_, err = st.ReadAt(buf, 3)
	s.ErrorIs(err, io.EOF)
	_, err = st.ReadAt(buf, 100)
	s.ErrorIs(err, io.EOF)
}

func (s *storeTestSuite) TestSparseWriteReadsZeros() {
	st := s.newStore()

	// one byte far past any block boundary
	_, err := st.WriteAt([]byte{9}, 3*blockSize+5)
	s.NoError(err)

	size, err := st.Size()
	s.NoError(err)
	s.EqualValues(3*blockSize+6, size)

	content := make([]byte, size)
	n, err := st.ReadAt(content, 0)
	s.NoError(err)
	s.EqualValues(size, n)

	expected := make([]byte, size)
	expected[size-1] = 9
	s.Equal(expected, content, "unwritten gap reads as zeros")
}

func (s *storeTestSuite) TestRandomOffsetsRoundTrip() {
	st := s.newStore()
	rng := rand.New(rand.NewSource(42))
	shadow := make([]byte, 5*blockSize)

	for i := 0; i < 100; i++ {
		off := rng.Intn(len(shadow) - 256)
		chunk := make([]byte, 1+rng.Intn(255))
		rng.Read(chunk)
		copy(shadow[off:], chunk)

		n, err := st.WriteAt(chunk, int64(off))
		s.NoError(err)
		s.Equal(len(chunk), n)
	}

	size, err := st.Size()
	s.NoError(err)
	content := make([]byte, size)
	_, err = st.ReadAt(content, 0)
	s.NoError(err)
	s.True(bytes.Equal(shadow[:size], content), "store content diverged from shadow copy")
}

func (s *storeTestSuite) TestTruncate() {
	st := s.newStore()

	_, err := st.WriteAt([]byte{1, 2, 3, 4, 5}, 0)
	s.NoError(err)

	s.NoError(st.Truncate(2))
	size, err := st.Size()
	s.NoError(err)
	s.EqualValues(2, size)

	_, err = st.ReadAt(make([]byte, 1), 2)
	s.ErrorIs(err, io.EOF, "read beyond the truncated length")

	// growing truncate zero-fills
	s.NoError(st.Truncate(5))
	content := make([]byte, 5)
	_, err = st.ReadAt(content, 0)
	s.NoError(err)
	s.Equal([]byte{1, 2, 0, 0, 0}, content, "discarded bytes do not resurface")

	s.Error(st.Truncate(-1))
}

func (s *storeTestSuite) TestReadOnly() {
	st := s.newStore()

	_, err := st.WriteAt([]byte{1, 2, 3}, 0)
	s.NoError(err)

	s.True(st.canWrite())
	s.True(st.setReadOnly())
	s.False(st.canWrite())

	_, err = st.WriteAt([]byte{9}, 0)
	s.ErrorIs(err, vfs.ErrReadOnly)

	// a rejected write leaves content unchanged
	content := make([]byte, 3)
	_, err = st.ReadAt(content, 0)
	s.NoError(err)
	s.Equal([]byte{1, 2, 3}, content)
}

func (s *storeTestSuite) TestNegativeOffset() {
	st := s.newStore()

	_, err := st.ReadAt(make([]byte, 1), -1)
	s.ErrorIs(err, vfs.ErrNegativeOffset)
	_, err = st.WriteAt([]byte{1}, -1)
	s.ErrorIs(err, vfs.ErrNegativeOffset)
}

func (s *storeTestSuite) TestLastModified() {
	st := s.newStore()
	created := st.getLastModified()
	s.False(created.IsZero())

	_, err := st.WriteAt([]byte{1}, 0)
	s.NoError(err)
	s.False(st.getLastModified().Before(created))
}

func (s *storeTestSuite) TestSetName() {
	st := s.newStore()
	st.setName("memFS:/renamed")
	s.Equal("memFS:/renamed", st.getName())
}

func TestStore(t *testing.T) {
	suite.Run(t, &storeTestSuite{})
}

func TestCompressedStore(t *testing.T) {
	suite.Run(t, &storeTestSuite{compress: true})
}

func TestCompressedStoreBlockBoundaries(t *testing.T) {
	st := newStore("memLZ:/test", true)

	// straddle a block boundary so a write-back decodes and re-encodes both sides
	chunk := bytes.Repeat([]byte{0xAB}, 100)
	if _, err := st.WriteAt(chunk, blockSize-50); err != nil {
		t.Fatal(err)
	}

	got := make([]byte, 100)
	if _, err := st.ReadAt(got, blockSize-50); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(chunk, got) {
		t.Fatal("compressed round-trip across block boundary lost bytes")
	}
}
