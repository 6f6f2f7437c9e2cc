package main

import "github.com/FarhanAryadi/fintrack/cmd"

func main() {
	cmd.Execute()
}
