package main

import "github.com/endorses/lippyphone/cmd"

func main() {
	cmd.Execute()
}
