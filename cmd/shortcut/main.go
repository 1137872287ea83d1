package main

import "github.com/clipsmith/shortcut/internal/cli"

func main() {
	cli.Main()
}
