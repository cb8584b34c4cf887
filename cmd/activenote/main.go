// Command activenote serves the get_active_file MCP tool over stdio.
package main

import (
	"fmt"
	"os"
)

func main() {
	err := newRootCommand().Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "activenote:", err)
		os.Exit(1)
	}
}
