package main

import "github.com/e11jah/bstmap/internal/cli"

func main() {
	cli.Execute()
}
