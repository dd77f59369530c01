package main

import "github.com/dzjyyds666/inifix/cmd"

func main() {
	cmd.Execute()
}
