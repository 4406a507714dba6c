package main

import "github.com/easyeda2kicad/easyeda2kicad/cmd/easyeda2kicad/cmd"

func main() {
	cmd.Execute()
}
