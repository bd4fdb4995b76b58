package main

import (
	"carebird/internal/cmd"
)

func main() {
	cmd.Run()
}
