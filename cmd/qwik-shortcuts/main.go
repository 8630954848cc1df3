package main

import "qwikshortcuts/internal/cli"

func main() {
	cli.Execute()
}
