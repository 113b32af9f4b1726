package main

import (
	"fmt"
	"os"

	"todo-list/internal/cli"
)

func main() {
	factory := NewBackendFactory()
	root := cli.NewRootCommand(factory.Create)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
