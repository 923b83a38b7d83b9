package main

import "id-reserve/cmd"

func main() {
	cmd.Execute()
}
