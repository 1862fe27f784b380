package vfssimple

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/vfskit/vfs"
	"github.com/vfskit/vfs/backend"
)

/**********************************
 ************TESTS*****************
 **********************************/

type vfsSimpleSuite struct {
	suite.Suite
}

func (s *vfsSimpleSuite) TestNewPath() {
	p, err := NewPath("memFS:/some/file.txt")
	s.NoError(err)
	s.Equal("memFS:/some/file.txt", p.String())
	s.Equal("memFS", p.FileSystem().Scheme())

	p, err = NewPath("memLZ:/some/file.txt")
	s.NoError(err)
	s.Equal("memLZ", p.FileSystem().Scheme())
}

func (s *vfsSimpleSuite) TestErrors() {
	_, err := NewPath("")
	s.ErrorIs(err, ErrBlankName)

	_, err = NewPath("/no/scheme")
	s.ErrorIs(err, backend.ErrMissingScheme)

	_, err = NewPath("bogus:/file.txt")
	s.ErrorIs(err, backend.ErrNotRegistered)
}

func (s *vfsSimpleSuite) TestEndToEnd() {
	src, err := NewPath("memFS:/simple/src.txt")
	s.Require().NoError(err)

	ch, err := src.Open(vfs.ReadWrite)
	s.Require().NoError(err)
	_, err = ch.Write([]byte("hello"))
	s.Require().NoError(err)
	s.NoError(ch.Close())

	size, err := src.Size()
	s.NoError(err)
	s.EqualValues(5, size)
}

func TestVFSSimple(t *testing.T) {
	suite.Run(t, new(vfsSimpleSuite))
}
