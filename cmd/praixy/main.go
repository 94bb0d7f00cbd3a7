package main

import (
	"os"

	"github.com/marshal-labs/praixy/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
