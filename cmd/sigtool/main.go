package main

import (
	"os"

	"github.com/jroosing/hydrasig/cmd/sigtool/cli"
)

func main() {
	if err := cli.New().Execute(); err != nil {
		os.Exit(1)
	}
}
