package main

import "github.com/nathanhack/golay24/cmd"

func main() {
	cmd.Execute()
}
