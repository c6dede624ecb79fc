/*
Package color wraps the fatih/color sprint functions so that call sites
can colorize fragments inline without building color.Color values.
*/
package color

import "github.com/fatih/color"

var (
	FgRed     = color.New(color.FgRed).SprintFunc()
	FgGreen   = color.New(color.FgGreen).SprintFunc()
	FgCyan    = color.New(color.FgCyan).SprintFunc()
	FgMagenta = color.New(color.FgMagenta).SprintFunc()
)
