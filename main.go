package main

import "github.com/qrave1/HotSeat/cmd"

func main() {
	cmd.Execute()
}
