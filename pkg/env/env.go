// Package env keeps names of environment variables with special significance to
// the calculator.
package env

// Environment variables with special significance to the calculator.
const (
	HOME            = "HOME"
	XDG_CONFIG_HOME = "XDG_CONFIG_HOME"
)
