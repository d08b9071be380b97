package main

import (
	"fmt"
	"orbital/cmd"
	"os"
)

func main() {
	if err := cmd.Start(os.Args[1:]); err != nil {
		fmt.Printf("server run into an error: %s", err)
		os.Exit(1)
	}
}
