package main

import "github.com/JonMunkholm/northwind/internal/cli"

func main() {
	cli.Execute()
}
