package main

import "familyfinance/internal/cli"

func main() {
	cli.Execute()
}
