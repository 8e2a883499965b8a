// Package registry enumerates the command scripts inside a workspace's bs/
// directory and resolves requested names to entries. Each regular file's
// basename is an invocable command name; a name also matches with its
// extension stripped, so bs/publish.sh answers to `rs publish`.
package registry
