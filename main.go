package main

import "github.com/ankane/tableprobe/cmd"

func main() {
	cmd.Execute()
}
