package main

import "project-manager.com/project-manager/cmd"

func main() {
	cmd.Execute()
}
