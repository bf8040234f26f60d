package main

import "stem/internal/cli"

func main() {
	cli.Execute()
}
