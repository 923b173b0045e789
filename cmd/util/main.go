package main

import (
	"github.com/onflow/relay-storage-roots/cmd/util/cmd"
)

func main() {
	cmd.Execute()
}
