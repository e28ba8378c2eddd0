// Package xattrs persists mark strings in a file's extended attributes.
// It is the only part of the system that touches the filesystem; marks
// are read and written as UTF-8 text under a single attribute name.
package xattrs

import (
	stderrors "errors"
	"syscall"

	"github.com/pkg/xattr"

	"github.com/edera-dev/paxmark/pkg/constants"
	"github.com/edera-dev/paxmark/pkg/errors"
)

// Store reads and writes the mark attribute on target files.
type Store struct {
	attr string
}

// Option is a functional option for configuring the Store.
type Option func(*Store)

// WithAttribute overrides the extended attribute name used to store marks.
func WithAttribute(name string) Option {
	return func(s *Store) {
		if name != "" {
			s.attr = name
		}
	}
}

// New creates a Store using the default attribute name unless overridden.
func New(opts ...Option) *Store {
	s := &Store{attr: constants.AttrName}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Attribute returns the extended attribute name this store operates on.
func (s *Store) Attribute() string {
	return s.attr
}

// Read returns the stored mark string for path and whether a value was
// present. A target without the attribute is not an error: it reports
// ("", false, nil) and the caller decides what default applies.
func (s *Store) Read(path string) (string, bool, error) {
	data, err := xattr.Get(path, s.attr)
	if err != nil {
		if stderrors.Is(err, xattr.ENOATTR) {
			return "", false, nil
		}
		return "", false, errors.WrapAttr("get", path, s.attr, classify(err))
	}
	return string(data), true, nil
}

// Write stores the mark string on path.
func (s *Store) Write(path, value string) error {
	if err := xattr.Set(path, s.attr, []byte(value)); err != nil {
		return errors.WrapAttr("set", path, s.attr, classify(err))
	}
	return nil
}

// Remove deletes the mark attribute from path. Removing an attribute that
// was never set succeeds.
func (s *Store) Remove(path string) error {
	if err := xattr.Remove(path, s.attr); err != nil {
		if stderrors.Is(err, xattr.ENOATTR) {
			return nil
		}
		return errors.WrapAttr("remove", path, s.attr, classify(err))
	}
	return nil
}

// classify maps syscall-level failures onto the package sentinels so
// callers can test with errors.Is without importing syscall.
func classify(err error) error {
	switch {
	case stderrors.Is(err, syscall.ENOTSUP):
		return stderrors.Join(errors.ErrUnsupported, err)
	case stderrors.Is(err, syscall.EACCES), stderrors.Is(err, syscall.EPERM):
		return stderrors.Join(errors.ErrPermission, err)
	case stderrors.Is(err, syscall.ENOENT):
		return stderrors.Join(errors.ErrNotFound, err)
	default:
		return err
	}
}
