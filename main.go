package main

import "github.com/gopherdocs/adocpipe/cmd"

func main() {
	cmd.Execute()
}
