// Package main provides the Jet CLI.
package main

import (
	"fmt"
	"os"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("Jet %s\n", version)
		return
	}

	fmt.Println("Jet - Forward-Mode Automatic Differentiation for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("")
	fmt.Println("See examples/ for runnable gradient and root-finding demos.")
}
