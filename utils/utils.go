// Package utils holds path and error helpers shared by the vfs backends.
package utils

import "strings"

// SplitScheme splits a scheme-qualified name at the first ':'. For a name with
// no scheme separator it returns an empty scheme and the name unchanged.
func SplitScheme(name string) (scheme, rest string) {
	idx := strings.IndexByte(name, ':')
	if idx < 0 {
		return "", name
	}
	return name[:idx], name[idx+1:]
}

// CanonicalizeSchemePath returns the canonical form of a scheme-qualified name:
// backslashes are normalized to '/' and exactly one '/' follows the scheme
// separator. Two names address the same entry iff their canonical forms are
// equal.
func CanonicalizeSchemePath(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	idx := strings.IndexByte(name, ':') + 1
	if len(name) > idx && name[idx] != '/' {
		name = name[:idx] + "/" + name[idx:]
	}
	return name
}

// EnsureLeadingSlash adds a leading slash if needed.
func EnsureLeadingSlash(path string) string {
	if strings.HasPrefix(path, "/") {
		return path
	}
	return "/" + path
}

// RemoveTrailingSlash removes trailing slash, if any
func RemoveTrailingSlash(path string) string {
	return strings.TrimRight(path, "/")
}
