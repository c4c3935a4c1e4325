package main

import "github.com/mcoot/cornergame/internal/cli"

func main() {
	cli.Execute()
}
