package main

import "github.com/evrazdex/gateway-resolver/cmd"

func main() {
	cmd.Execute()
}
