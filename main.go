package main

import "github.com/paddlecraft/gohull/cmd"

func main() {
	cmd.Execute()
}
