package main

import "github.com/KaramelBytes/postkit/cmd"

func main() {
	cmd.Execute()
}
