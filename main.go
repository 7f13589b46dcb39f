package main

import "dario.lol/udns/cmd"

func main() {
	cmd.Execute()
}
