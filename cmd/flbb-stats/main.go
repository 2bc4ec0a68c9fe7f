package main

import "github.com/Marcin-Rybarczyk/flbb-statistics-public/internal/cli"

func main() {
	cli.Execute()
}
