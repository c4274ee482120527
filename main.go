package main

import "paysplit/cmd"

func main() {
	cmd.Execute()
}
