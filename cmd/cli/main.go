package main

import (
	"github.com/telemetry-codec/cmd/cli/cmd"
)

func main() {
	cmd.Execute()
}
