// Package installer runs the project's dependency installer as a child
// process with inherited standard streams. A nonzero exit becomes an
// *InstallError carrying the exit status. The package also knows the install
// commands of common JavaScript package managers and can detect and check
// an installer's version with semver constraints.
package installer
