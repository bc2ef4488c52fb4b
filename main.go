package main

import "smallsh/cmd"

func main() {
	cmd.Execute()
}
