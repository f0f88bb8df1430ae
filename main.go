package main

import "github.com/matt0757/Alt-F4-NFTMarketplace/cmd"

func main() {
	cmd.Execute()
}
