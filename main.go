package main

import "github.com/alexiusacademia/ssbeam/cmd"

func main() {
	cmd.Execute()
}
