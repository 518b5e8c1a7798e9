// Package main is the entry point for the freshreadme CLI.
package main

import "github.com/dmi3/freshreadme/cmd"

func main() {
	cmd.Execute()
}
