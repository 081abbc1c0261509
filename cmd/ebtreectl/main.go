// Command ebtreectl exercises and serves the ebtree engine from the
// command line.
package main

import "ebtree/cmd/ebtreectl/cmd"

func main() {
	cmd.Execute()
}
