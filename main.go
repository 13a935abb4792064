package main

import "github.com/padworks/lppro/internal/cli"

func main() {
	cli.Execute()
}
