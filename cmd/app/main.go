package main

import "pharmacy/cmd"

func main() {
	cmd.Execute()
}
