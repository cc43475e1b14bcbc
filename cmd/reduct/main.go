package main

import (
	"os"

	"github.com/funvibe/reduct/pkg/cli"
)

func main() {
	os.Exit(cli.Run())
}
