package main

import "github.com/rosterhub/devstore/internal/cli"

func main() {
	cli.Execute()
}
