package cmd

import (
	"flag"

	"github.com/etnz/unicorns/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the commander's subcommands and flags for shell
// completion.
func Completion(c *subcommands.Commander) *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: flagPredictors(c.VisitAll),
	}
	c.VisitCommands(func(_ *subcommands.CommandGroup, sc subcommands.Command) {
		fs := flag.NewFlagSet(sc.Name(), flag.ContinueOnError)
		sc.SetFlags(fs)
		sub := &complete.Command{Flags: flagPredictors(fs.VisitAll)}
		if sc.Name() == "topic" {
			topics, _ := docs.GetAllTopics()
			sub.Args = predict.Set(topics)
		}
		root.Sub[sc.Name()] = sub
	})
	return root
}

// flagPredictors predicts file names for file flags, and nothing otherwise.
func flagPredictors(visit func(func(*flag.Flag))) map[string]complete.Predictor {
	flags := map[string]complete.Predictor{}
	visit(func(f *flag.Flag) {
		switch f.Name {
		case "database":
			flags[f.Name] = predict.Files("*.json")
		case "o":
			flags[f.Name] = predict.Files("*.xlsx")
		default:
			flags[f.Name] = predict.Set{}
		}
	})
	return flags
}
