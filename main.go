package main

import "github.com/dmaia/cpidash/cmd"

func main() {
	cmd.Execute()
}
