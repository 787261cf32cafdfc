package main

import "razordqm/cmd"

func main() {
	cmd.Execute()
}
