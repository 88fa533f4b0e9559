package main

import "potion-stacker/cmd"

func main() {
	cmd.Execute()
}
