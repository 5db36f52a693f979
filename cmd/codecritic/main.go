package main

import "codecritic/src/handler/cli"

func main() {
	cli.Run()
}
