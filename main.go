package main

import "github.com/robalobadob/proverbial/internal/cli"

func main() {
	cli.Execute()
}
