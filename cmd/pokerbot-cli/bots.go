package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lox/pokerbot-skeleton/sdk/bots"
)

type BotsCmd struct{}

func (c *BotsCmd) Run() error {
	printBots(os.Stdout)
	return nil
}

func printBots(w io.Writer) {
	for _, name := range bots.Names() {
		desc, _ := bots.Describe(name)
		fmt.Fprintf(w, "%-16s %s\n", name, desc)
	}
}
