// Package scaffold creates a project's directory skeleton under a base
// directory. Creation is idempotent: entries that already exist as
// directories are left alone, and a path component that exists as a
// regular file aborts the run with a FilesystemError. Nothing is rolled back
// on failure. Check reports the same tree without modifying it.
package scaffold
