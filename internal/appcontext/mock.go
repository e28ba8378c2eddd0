package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/edera-dev/paxmark/pkg/xattrs"
)

// Mock provides a mock implementation of Interface for testing.
// Each method can be customized by setting the corresponding function
// field. If a function field is nil, the method returns a default value.
type Mock struct {
	StoreFunc        func() *xattrs.Store
	LoggerFunc       func() *zerolog.Logger
	OutputFormatFunc func() string
	VersionFunc      func() string
	CommitFunc       func() string
	DateFunc         func() string
}

// Store returns a store using the mock function or a default store.
func (m *Mock) Store() *xattrs.Store {
	if m.StoreFunc != nil {
		return m.StoreFunc()
	}
	return xattrs.New()
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns the format using the mock function or "table".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "table"
}

// Version returns version using the mock function or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns commit using the mock function or "unknown".
func (m *Mock) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

// Date returns date using the mock function or "unknown".
func (m *Mock) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}
