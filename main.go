package main

import "namematch-backend/cmd"

func main() {
	cmd.Run()
}
