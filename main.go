package main

import "github.com/inovacc/droneplan/cmd"

func main() {
	cmd.Execute()
}
