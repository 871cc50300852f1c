package main

import "facet-reconciler/cmd"

func main() {
	cmd.Execute()
}
