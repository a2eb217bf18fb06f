package main

import (
	"github.com/blockfall/termtris/internal/cli"
)

func main() {
	cli.Execute()
}
