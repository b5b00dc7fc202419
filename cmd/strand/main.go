// Package main provides the Strand ML Framework CLI.
package main

import (
	"fmt"
	"os"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("Strand ML Framework %s\n", version)
		return
	}

	fmt.Println("Strand ML Framework - Type-Safe Tensors and Losses for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
}
