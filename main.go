package main

import "growth-projector/cli"

func main() {
	cli.Execute()
}
