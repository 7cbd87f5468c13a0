package cmd

import (
	"flag"

	"github.com/etnz/spending"
	"github.com/etnz/spending/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion tree of the registered commands.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub: map[string]*complete.Command{},
		Flags: map[string]complete.Predictor{
			"ledger-file": predict.Files("*.md"),
			"config":      predict.Files("*.yaml"),
			"plain":       predict.Nothing,
			"v":           predict.Nothing,
		},
	}
	for _, g := range groups {
		for _, c := range g.commands {
			f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
			c.SetFlags(f)
			sub := &complete.Command{Flags: map[string]complete.Predictor{}}
			f.VisitAll(func(fl *flag.Flag) {
				sub.Flags[fl.Name] = flagPredictor(fl)
			})
			if c.Name() == "topic" {
				topics, _ := docs.GetAllTopics()
				sub.Args = predict.Set(topics)
			}
			root.Sub[c.Name()] = sub
		}
	}
	return root
}

func flagPredictor(fl *flag.Flag) complete.Predictor {
	if b, ok := fl.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
		return predict.Nothing
	}
	switch fl.Name {
	case "c":
		return complete.PredictFunc(predictCategories)
	case "p":
		return predict.Set{"day", "week", "month", "quarter", "year"}
	case "o":
		return predict.Files("*.html")
	default:
		return predict.Something
	}
}

// predictCategories reads the categories from the ledger file.
func predictCategories(string) []string {
	s, err := loadSettings()
	if err != nil {
		return nil
	}
	e, err := spending.Open(spending.File(s.ledgerFile))
	if err != nil {
		return nil
	}
	return e.Ledger().Categories()
}
