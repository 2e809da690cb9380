package main

import "github.com/saber00001/chebfun/cmd"

func main() {
	cmd.Execute()
}
