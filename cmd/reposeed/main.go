package main

import "reposeed/internal/cmd"

func main() {
	cmd.Execute()
}
