// Package runner executes a resolved command script as a child process with
// inherited standard streams and reports its exit code. The operating
// system's executable loader handles shebangs and binary formats; runner
// does no interpreter dispatch of its own.
package runner
