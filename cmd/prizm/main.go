package main

import (
	"fmt"
	"os"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, render(os.Stderr, errorStyle, "error:"), err)
		os.Exit(1)
	}
}
