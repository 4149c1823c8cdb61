package main

import (
	"fmt"
	"github.com/charmbracelet/log"
	"os"
)

var logger *log.Logger

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
