// Package main is the entry point for the streamio application.
package main

import (
	"github.com/samber/lo"
	"github.com/streamio-cli/streamio/cmd"
	"github.com/streamio-cli/streamio/config"
	"github.com/streamio-cli/streamio/log"
	"github.com/streamio-cli/streamio/network"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())
	network.Setup()

	cmd.Execute()
}
