package main

import "biteengine/cmd/cli/command"

func main() {
	command.Execute()
}
