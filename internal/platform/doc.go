// Package platform holds the few filesystem calls whose behavior differs
// between Unix and Windows: permission bits and directory write probes.
package platform
