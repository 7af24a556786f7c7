package main

import "github.com/quinburrell/routingdaemon/cmd"

func main() {
	cmd.Execute()
}
