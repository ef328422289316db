package app

import (
	"fmt"

	"deporacle/eval"
	nlp "deporacle/nlp/types"
	"deporacle/util"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
)

func DepEvalConfigOut() {
	Log.Info("Data")
	Log.Infof("Parsed result file:\t%s", input)
	Log.Infof("Gold file:\t\t%s", inputGold)
}

// DepEvalCorpus scores parsed trees against gold trees sentence by sentence.
func DepEvalCorpus(parsed, gold []*nlp.DependencyTree) (*eval.Total, error) {
	if len(parsed) != len(gold) {
		return nil, fmt.Errorf("evaluation set sizes are different: %d parsed, %d gold", len(parsed), len(gold))
	}
	var total = &eval.Total{
		Results: make([]*eval.Result, 0, len(parsed)),
	}
	for i, instance := range parsed {
		if instance.Len() != gold[i].Len() {
			return nil, fmt.Errorf("sentence %d: %d parsed tokens, %d gold", i, instance.Len(), gold[i].Len())
		}
		total.Add(eval.DepEval(instance.Arcs(), gold[i].Arcs()))
	}
	return total, nil
}

func DepEvalRun(cmd *commander.Command, args []string) error {
	VerifyFlags(cmd, []string{"p", "g"})
	SetupLog(logLevel)
	if !VerifyExists(input) || !VerifyExists(inputGold) {
		return fmt.Errorf("missing input files")
	}
	DepEvalConfigOut()

	parsed, parsedSum, err := ReadTrees(input, inputFmt)
	if err != nil {
		return err
	}
	Log.Infof("Read %d sentences from %s (md5 %s)", len(parsed), input, parsedSum)
	gold, goldSum, err := ReadTrees(inputGold, inputFmt)
	if err != nil {
		return err
	}
	Log.Infof("Read %d sentences from %s (md5 %s)", len(gold), inputGold, goldSum)

	total, err := DepEvalCorpus(parsed, gold)
	if err != nil {
		return err
	}
	Log.Infof("Result (UAS, LAS, UEM #, UEM %%, LEM %%): %v %v %d %v %v TruePos: %d in %d sentences",
		total.UAS(), total.LAS(), total.UnlabeledExact, total.UEM(), total.LEM(), total.Labeled.TP, total.Sentences)
	for _, datum := range util.GetTopNStrInt(total.Errors().ByType(), 3) {
		Log.Infof("\t%s errors:\t%d", datum.S, datum.N)
	}
	return nil
}

func DepEvalCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       DepEvalRun,
		UsageLine: "depeval <file options> [arguments]",
		Short:     "runs dependency eval",
		Long: `
runs dependency eval

	$ ./deporacle depeval -p <file> -g <file> [-f yaml|conll]

`,
		Flag: *flag.NewFlagSet("depeval", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&input, "p", "", "Parse result file")
	cmd.Flag.StringVar(&inputGold, "g", "", "Gold file")
	cmd.Flag.StringVar(&inputFmt, "f", FORMAT_YAML, "Input format (yaml or conll)")
	cmd.Flag.StringVar(&logLevel, "v", "info", "Log level (debug, info, warn, error)")
	return cmd
}
