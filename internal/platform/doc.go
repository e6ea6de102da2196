package platform

// Package platform contains OS-specific helpers: locating the Downloads
// directory, naming saved files and revealing them in the file manager.
