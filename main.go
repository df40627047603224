package main

import "github.com/bwilliford/zenOut/cmd"

func main() {
	cmd.Execute()
}
