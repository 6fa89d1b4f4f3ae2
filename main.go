package main

import "demo-server/cmd"

func main() {
	cmd.Execute()
}
