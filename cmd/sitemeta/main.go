package main

import "sitemeta/cmd/sitemeta/cmd"

func main() {
	cmd.Execute()
}
