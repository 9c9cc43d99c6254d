package main

import (
	"os"

	"github.com/liuyang/duwen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
