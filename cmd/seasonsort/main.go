package main

import (
	"github.com/plexkit/seasonsort/internal/cli"
)

func main() {
	cli.Execute()
}
