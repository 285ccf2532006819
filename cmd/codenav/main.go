// Package main is the entry point for the codenav CLI tool.
package main

import (
	"github.com/anthropics/codenav/internal/cmd"
)

func main() {
	cmd.Execute()
}
