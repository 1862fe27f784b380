package mem

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/vfskit/vfs"
	"github.com/vfskit/vfs/backend"
)

/**********************************
 ************TESTS*****************
 **********************************/

type memFileSystemTest struct {
	suite.Suite
}

func (s *memFileSystemTest) TestNameAndScheme() {
	fs := NewFileSystem()
	s.Equal("In-Memory Filesystem", fs.Name())
	s.Equal(Scheme, fs.Scheme())

	cfs := NewCompressedFileSystem()
	s.Equal("In-Memory Filesystem (compressed)", cfs.Name())
	s.Equal(CompressedScheme, cfs.Scheme())
}

func (s *memFileSystemTest) TestRegisteredOnLoad() {
	s.NotNil(backend.Backend(Scheme), "memFS registered on load")
	s.NotNil(backend.Backend(CompressedScheme), "memLZ registered on load")
}

func (s *memFileSystemTest) TestIndependentRegistries() {
	fs1 := NewFileSystem()
	fs2 := NewFileSystem()

	p1, err := fs1.NewPath("memFS:/shared-name")
	s.Require().NoError(err)
	p2, err := fs2.NewPath("memFS:/shared-name")
	s.Require().NoError(err)

	created, err := p1.CreateFile()
	s.NoError(err)
	s.True(created)

	exists, err := p2.Exists()
	s.NoError(err)
	s.False(exists, "separately constructed filesystems share no namespace")
}

func (s *memFileSystemTest) TestCompressedRoundTrip() {
	fs := NewCompressedFileSystem()
	p, err := fs.NewPath("memLZ:/data.bin")
	s.Require().NoError(err)

	ch, err := p.Open(vfs.ReadWrite)
	s.Require().NoError(err)

	payload := []byte("compress me, decompress me, byte for byte")
	_, err = ch.Write(payload)
	s.Require().NoError(err)

	_, err = ch.Seek(0, 0)
	s.Require().NoError(err)
	got := make([]byte, len(payload))
	_, err = ch.Read(got)
	s.NoError(err)
	s.Equal(payload, got)
	s.NoError(ch.Close())
}

func TestMemFileSystem(t *testing.T) {
	suite.Run(t, new(memFileSystemTest))
}
