package main

import (
	"github.com/scripturemastery/server/internal/cli"
)

func main() {
	cli.Execute()
}
