package main

import "github.com/meysamhadeli/snapseed/cmd"

func main() {
	cmd.Execute()
}
