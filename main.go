package main

import "github.com/gaurav-prasanna/blogpipe/cmd"

func main() {
	cmd.Execute()
}
