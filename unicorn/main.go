// Command unicorn explores a dataset of companies valued above one billion
// dollars.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/unicorns/cmd"
	"github.com/google/subcommands"
)

func main() {
	name := path.Base(os.Args[0])
	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	// exits when invoked by the shell for completion.
	cmd.Completion(commander).Complete(name)

	flag.Parse()
	cmd.InitLogger()

	if sub := flag.Arg(0); sub != "" && !cmd.IsRegistered(commander, sub) {
		if found, code := cmd.RunExtension(sub, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}
