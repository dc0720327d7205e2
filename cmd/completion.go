package cmd

import (
	"flag"

	"github.com/etnz/fortune/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// argsPredictor is implemented by commands that can complete their arguments.
type argsPredictor interface {
	predictArgs() complete.Predictor
}

// Complete answers the shell completion request, if any, and exits. Without
// request it returns and the program runs as usual.
//
// Install the completion with COMP_INSTALL=1 ffc.
func Complete(c *subcommands.Commander, topFlags *flag.FlagSet, name string) {
	completion(c, topFlags).Complete(name)
}

// completion describes the commands registered on c.
func completion(c *subcommands.Commander, topFlags *flag.FlagSet) *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: flagPredictors(topFlags),
	}
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		f := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		cmd.SetFlags(f)
		sub := &complete.Command{Flags: flagPredictors(f)}
		if p, ok := cmd.(argsPredictor); ok {
			sub.Args = p.predictArgs()
		}
		root.Sub[cmd.Name()] = sub
	})
	return root
}

func flagPredictors(f *flag.FlagSet) map[string]complete.Predictor {
	flags := map[string]complete.Predictor{}
	f.VisitAll(func(fl *flag.Flag) {
		if b, ok := fl.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			flags[fl.Name] = predict.Nothing
			return
		}
		switch fl.Name {
		case "in":
			flags[fl.Name] = predict.Files("*.json")
		case "o":
			flags[fl.Name] = predict.Files("*")
		case "store":
			flags[fl.Name] = predict.Dirs("*")
		case "currency":
			flags[fl.Name] = predict.Set{"CNY", "EUR", "USD", "GBP", "JPY", "CHF"}
		default:
			flags[fl.Name] = predict.Something
		}
	})
	return flags
}

// optionIDs predicts the IDs of the stored options.
var optionIDs = complete.PredictFunc(func(prefix string) []string {
	var ids []string
	for _, o := range openStore().LoadOptions() {
		ids = append(ids, string(o.ID))
	}
	return ids
})

func (*editCmd) predictArgs() complete.Predictor { return optionIDs }
func (*copyCmd) predictArgs() complete.Predictor { return optionIDs }
func (*rmCmd) predictArgs() complete.Predictor   { return optionIDs }
func (*showCmd) predictArgs() complete.Predictor { return optionIDs }

func (*importCmd) predictArgs() complete.Predictor { return predict.Files("*.json") }

func (*topicCmd) predictArgs() complete.Predictor {
	return complete.PredictFunc(func(prefix string) []string {
		topics, _ := docs.GetAllTopics()
		return append(topics, "readme", "*")
	})
}
