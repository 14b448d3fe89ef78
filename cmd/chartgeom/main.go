// main is the entry point for the chartgeom CLI.
package main

import (
	"github.com/openclinic/chartgeom/cmd"
	"github.com/openclinic/chartgeom/internal/contract"
	"github.com/openclinic/chartgeom/internal/datastore"
)

func main() {
	err := cmd.Execute()

	// Flush profiles and close store connections before any exit.
	if perr := cmd.StopProfiling(); perr != nil {
		contract.LogWarn("Failed to stop profiling", perr)
	}
	datastore.CloseStore()

	if err != nil {
		contract.LogFatal("Command failed", err)
	}
}
