package main

import "github.com/Zcytxcbyz/projectile/internal/cli"

func main() {
	cli.Execute()
}
