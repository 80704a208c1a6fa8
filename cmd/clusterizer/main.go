package main

import (
	"github.com/NVIDIA/la-clusterizer/pkg/cli"
)

func main() {
	cli.Execute()
}
