package main

import (
	"github.com/axion-project/axion/pkg/cmd"
)

func main() {
	cmd.Execute()
}
