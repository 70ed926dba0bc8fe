// Package preview blits rendered artwork to the Linux framebuffer so the
// icon can be checked on the target display without copying files around.
package preview

// Logger is the minimal logging surface preview needs; it matches the app
// logger without importing it.
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}
