package main

import "github.com/biruktesfaye/gitlet/cmd"

func main() {
	cmd.Execute()
}
