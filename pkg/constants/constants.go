// Package constants provides shared constants used throughout the paxmark
// codebase. This includes the extended attribute name, file permissions,
// and other values that should be consistent across the application.
package constants

// Attribute constants define where marks are persisted
const (
	// AttrName is the extended attribute that stores the mark string
	AttrName = "user.pax.flags"
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)
