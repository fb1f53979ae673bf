package main

import "github.com/arl/go-scmap/cmd/scmap/cmd"

func main() {
	cmd.Execute()
}
