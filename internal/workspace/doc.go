// Package workspace resolves the project root — the nearest ancestor of the
// working directory containing a bs/ commands directory — and loads the
// optional bs.yaml workspace manifest found next to it.
package workspace
