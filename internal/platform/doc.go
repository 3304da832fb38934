// Package platform contains OS integration glue: export directories,
// non-clobbering file names and revealing exported files in the file manager.
package platform
