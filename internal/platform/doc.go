// Package platform isolates OS-specific behavior, currently just permission
// bits, which Windows does not model.
package platform
