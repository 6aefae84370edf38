package cmd

import (
	"flag"
	"io"
	"log"

	"github.com/etnz/bankroll"
	"github.com/etnz/bankroll/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion tree of bkr, built from the flags of
// every command.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub: map[string]*complete.Command{},
		Flags: map[string]complete.Predictor{
			"config":   predict.Files("*.yaml"),
			"store":    predict.Files("*"),
			"backend":  predict.Set{bankroll.BackendDir, bankroll.BackendSQLite, bankroll.BackendMemory},
			"currency": predict.Something,
		},
	}
	for _, c := range Commands() {
		fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(fs)
		sub := &complete.Command{
			Flags: map[string]complete.Predictor{},
			Args:  argsPredictor(c.Name()),
		}
		fs.VisitAll(func(f *flag.Flag) {
			sub.Flags[f.Name] = flagPredictor(f)
		})
		root.Sub[c.Name()] = sub
	}
	return root
}

func flagPredictor(f *flag.Flag) complete.Predictor {
	if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
		return predict.Nothing
	}
	switch f.Name {
	case "a":
		return complete.PredictFunc(accountNames)
	case "k":
		return predict.Set{string(bankroll.Gain), string(bankroll.Loss), string(bankroll.Flat)}
	case "o":
		return predict.Files("*")
	case "ack":
		return predict.Set{"all"}
	}
	return predict.Something
}

func argsPredictor(name string) complete.Predictor {
	switch name {
	case "topic":
		return complete.PredictFunc(func(string) []string {
			topics, _ := docs.GetAllTopics()
			return topics
		})
	case "import-web":
		return predict.Files("*.json")
	case "add-account", "goal", "record":
		return predict.Something
	}
	return predict.Nothing
}

// accountNames lists the names of the registered accounts.
func accountNames(prefix string) []string {
	log.SetOutput(io.Discard)
	s, err := openSession()
	if err != nil {
		return nil
	}
	defer s.store.Close()
	var names []string
	for _, a := range s.book.State().Accounts {
		names = append(names, a.Name)
	}
	return names
}
