package main

import (
	"os"

	"github.com/Chamz87/IBM-Capstone-SCE/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
