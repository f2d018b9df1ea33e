package main

import "github.com/douhashi/issue-labeler/cmd"

func main() {
	cmd.Execute()
}
