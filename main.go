package main

import "github.com/privacycheck/privacycheck-cli/cmd"

var execCmd = cmd.Execute

func main() {
	execCmd()
}
