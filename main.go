// main is the entry point for the rankviz CLI.
package main

import (
	"github.com/huangsam/rankviz/cmd"
	"github.com/huangsam/rankviz/internal/contract"
)

func main() {
	err := cmd.Execute()
	if stopErr := cmd.StopProfiling(); stopErr != nil {
		contract.LogWarn("Cannot stop profiling", stopErr)
	}
	if err != nil {
		contract.LogFatal("Cannot run rankviz", err)
	}
}
