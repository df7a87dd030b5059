package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(defaultEngine).Execute(); err != nil {
		if !errors.Is(err, errUnsuccessful) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
