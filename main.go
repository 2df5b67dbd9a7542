package main

import "github.com/winapp/winapp-cli/cmd"

func main() {
	cmd.Execute()
}
