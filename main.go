package main

import "riddle-bridge/cmd"

func main() {
	cmd.Execute()
}
