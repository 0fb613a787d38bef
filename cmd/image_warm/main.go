package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(containerResolver, os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
