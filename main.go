// main is the entry point for the cityscope CLI.
package main

import (
	"github.com/cityscope/cityscope/cmd"
	"github.com/cityscope/cityscope/internal/citystore"
	"github.com/cityscope/cityscope/internal/contract"
)

func main() {
	err := cmd.Execute()

	// Close store connections before any exit path.
	citystore.CloseStores()

	if err != nil {
		contract.LogFatal("Command failed", err)
	}
}
