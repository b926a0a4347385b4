package main

import "github.com/rsimai/xtouch-mini/cmd"

func main() {
	cmd.Execute()
}
