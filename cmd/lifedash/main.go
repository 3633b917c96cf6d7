package main

import "lifedash/pkg/cli"

func main() {
	cli.Execute()
}
