package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/vfskit/vfs"
)

// FileSystem is a mock implementation of the vfs.FileSystem interface.
type FileSystem struct {
	mock.Mock
}

// NewPath mocks the resolution of a name into a Path
func (m *FileSystem) NewPath(name string) (vfs.Path, error) {
	args := m.Called(name)
	p, _ := args.Get(0).(vfs.Path)
	return p, args.Error(1)
}

// Name mocks the filesystem name
func (m *FileSystem) Name() string {
	args := m.Called()
	return args.String(0)
}

// Scheme mocks the filesystem scheme
func (m *FileSystem) Scheme() string {
	args := m.Called()
	return args.String(0)
}

// NewFileSystem creates a new instance of FileSystem. It also registers a
// testing interface on the mock and a cleanup function to assert the mock's
// expectations.
func NewFileSystem(t interface {
	mock.TestingT
	Cleanup(func())
}) *FileSystem {
	m := &FileSystem{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
