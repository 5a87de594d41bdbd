package main

import (
	"context"
	"log"
	"os"

	"github.com/mipskit/mipsasm/cmd"
	"github.com/urfave/cli/v2"
)

func main() {
	app := cli.NewApp()
	app.Name = os.Args[0]
	app.Usage = "Two-pass MIPS Assembler"
	app.Description = "Two-pass MIPS Assembler"
	app.Commands = []*cli.Command{
		cmd.AssembleCommand,
	}
	err := app.RunContext(context.Background(), os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
