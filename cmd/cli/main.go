package main

import "movierecommender/cmd/cli/command"

func main() {
	command.Execute()
}
