package registry

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrUnknownCommand is returned when a requested name matches no entry and
// no default command is available.
var ErrUnknownCommand = errors.New("unknown command")

// Entry is one discovered command script.
type Entry struct {
	// Name is the file's basename, extension included.
	Name string
	// Path is the absolute path to the script.
	Path string
	// Executable reports whether any execute permission bit is set.
	Executable bool
}

// InvocableName returns the name users type: the basename with its last
// extension stripped (bs/publish.sh → publish). Files without an extension
// keep their basename.
func (e Entry) InvocableName() string {
	return strings.TrimSuffix(e.Name, filepath.Ext(e.Name))
}

// List enumerates the regular files directly inside commandsDir, sorted by
// name. Subdirectories and dangling symlinks are excluded; symlinks to
// regular files count.
func List(commandsDir string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(commandsDir)
	if err != nil {
		return nil, fmt.Errorf("reading commands directory %s: %w", commandsDir, err)
	}

	var entries []Entry
	for _, de := range dirEntries {
		path := filepath.Join(commandsDir, de.Name())

		// Stat follows symlinks, so dangling links and subdirectories
		// both fall out here.
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}

		entries = append(entries, Entry{
			Name:       de.Name(),
			Path:       path,
			Executable: info.Mode().Perm()&0111 != 0,
		})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

// Lookup resolves name against entries, case-sensitively. An exact basename
// match wins; otherwise the first extension-stripped match (in sorted order)
// is taken.
func Lookup(entries []Entry, name string) (Entry, bool) {
	for _, e := range entries {
		if e.Name == name {
			return e, true
		}
	}
	for _, e := range entries {
		if e.InvocableName() == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Names returns the invocable names of all entries, deduplicated, in sorted
// order. This is the data source for `rs ls` and shell completion.
func Names(entries []Entry) []string {
	seen := make(map[string]bool, len(entries))
	var names []string
	for _, e := range entries {
		n := e.InvocableName()
		if !seen[n] {
			seen[n] = true
			names = append(names, n)
		}
	}
	sort.Strings(names)
	return names
}
