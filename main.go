package main

import "github.com/rskv-p/fpgrowth/cmd"

func main() {
	cmd.Execute()
}
