// Package testutil contains helpers that change process-wide state for the
// duration of a test.
package testutil

import (
	"os"
	"path/filepath"

	"src.rpncalc.dev/pkg/env"
	"src.rpncalc.dev/pkg/must"
)

// Cleanuper is the part of [testing.TB] the helpers need.
type Cleanuper interface {
	Cleanup(func())
}

// Set assigns v to *p and restores the old value on cleanup.
func Set[T any](c Cleanuper, p *T, v T) {
	old := *p
	*p = v
	c.Cleanup(func() { *p = old })
}

// Setenv sets an environment variable and restores its old state on cleanup.
// It returns value.
func Setenv(c Cleanuper, name, value string) string {
	restoreEnv(c, name)
	os.Setenv(name, value)
	return value
}

// Unsetenv unsets an environment variable and restores its old state on
// cleanup.
func Unsetenv(c Cleanuper, name string) {
	restoreEnv(c, name)
	os.Unsetenv(name)
}

func restoreEnv(c Cleanuper, name string) {
	if old, ok := os.LookupEnv(name); ok {
		c.Cleanup(func() { os.Setenv(name, old) })
	} else {
		c.Cleanup(func() { os.Unsetenv(name) })
	}
}

// TempDir creates a directory that is removed with all its content on
// cleanup. The returned path has no symlinks, so it can be compared with the
// working directory.
func TempDir(c Cleanuper) string {
	dir := must.OK1(filepath.EvalSymlinks(must.OK1(os.MkdirTemp("", "rpncalctest"))))
	c.Cleanup(func() { os.RemoveAll(dir) })
	return dir
}

// InTempDir changes into a new temporary directory, and back to the old
// working directory on cleanup. It returns the new directory.
func InTempDir(c Cleanuper) string {
	dir := TempDir(c)
	old := must.OK1(os.Getwd())
	must.OK(os.Chdir(dir))
	c.Cleanup(func() { must.OK(os.Chdir(old)) })
	return dir
}

// ConfigHome points $XDG_CONFIG_HOME at a new temporary directory and returns
// the directory rpncalc reads its config.yaml from. The directory itself is
// not created.
func ConfigHome(c Cleanuper) string {
	return filepath.Join(Setenv(c, env.XDG_CONFIG_HOME, TempDir(c)), "rpncalc")
}
