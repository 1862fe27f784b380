// Package mocks provides testify mocks for the vfs capability interfaces.
package mocks

import (
	"github.com/stretchr/testify/mock"
)

// OffsetIO is a mock implementation of the vfs.OffsetIO interface, used to
// script offset-addressed reads and writes underneath a positional channel.
type OffsetIO struct {
	mock.Mock
}

// ReadAt mocks the io.ReaderAt read
func (m *OffsetIO) ReadAt(p []byte, off int64) (int, error) {
	args := m.Called(p, off)
	return args.Int(0), args.Error(1)
}

// WriteAt mocks the io.WriterAt write
func (m *OffsetIO) WriteAt(p []byte, off int64) (int, error) {
	args := m.Called(p, off)
	return args.Int(0), args.Error(1)
}

// Truncate mocks the resize of the underlying file
func (m *OffsetIO) Truncate(size int64) error {
	args := m.Called(size)
	return args.Error(0)
}

// Size mocks the current length of the underlying file
func (m *OffsetIO) Size() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// Close mocks the close of the underlying file
func (m *OffsetIO) Close() error {
	args := m.Called()
	return args.Error(0)
}

// NewOffsetIO creates a new instance of OffsetIO. It also registers a testing
// interface on the mock and a cleanup function to assert the mock's
// expectations.
func NewOffsetIO(t interface {
	mock.TestingT
	Cleanup(func())
}) *OffsetIO {
	m := &OffsetIO{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
