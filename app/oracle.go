package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"deporacle/alg/search"
	"deporacle/alg/transition"
	"deporacle/nlp/format/treeyaml"
	dep "deporacle/nlp/parser/dependency/transition"
	nlp "deporacle/nlp/types"
	"deporacle/util"
	"deporacle/util/conf"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"github.com/prometheus/client_golang/prometheus"
)

// flagConfig is bound to the oracle command flags
var flagConfig = conf.DefaultRunConfig()

// runConfig merges the flags into the configuration file, if one is given;
// only flags set on the command line override file values.
func runConfig(cmd *commander.Command) (*conf.RunConfig, error) {
	if confFile == "" {
		config := *flagConfig
		return &config, config.Validate()
	}
	config, err := conf.ReadRunConfigFile(confFile)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", confFile, err)
	}
	cmd.Flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "a":
			config.System = flagConfig.System
		case "o":
			config.Oracle = flagConfig.Oracle
		case "label":
			config.Labels = flagConfig.Labels
		case "policy":
			config.Policy = flagConfig.Policy
		case "seed":
			config.Seed = flagConfig.Seed
		case "p":
			config.Rate = flagConfig.Rate
		case "j":
			config.Workers = flagConfig.Workers
		case "maxtrans":
			config.MaxTransitions = flagConfig.MaxTransitions
		case "v":
			config.LogLevel = flagConfig.LogLevel
		}
	})
	return config, config.Validate()
}

// NewOracle builds the oracle named by config.
func NewOracle(config *conf.RunConfig) (*dep.Oracle, error) {
	system, err := dep.NewSystem(config.System)
	if err != nil {
		return nil, err
	}
	oracleFunc, err := dep.OracleFuncFor(system, config.Oracle)
	if err != nil {
		return nil, err
	}
	label := dep.Typed
	if config.Labels == "untyped" {
		label = dep.Untyped
	}
	oracle := dep.NewOracle(system, oracleFunc, label)
	for _, rel := range config.Relations {
		oracle.Relations = append(oracle.Relations, nlp.DepRel(rel))
	}
	oracle.MaxTransitions = config.MaxTransitions
	oracle.Log = Log
	return oracle, nil
}

// GenerateOracle derives one record per tree with the settings in config.
func GenerateOracle(ctx context.Context, config *conf.RunConfig, trees []*nlp.DependencyTree, reg prometheus.Registerer) ([]treeyaml.SequenceRecord, *dep.CorpusResult, error) {
	oracle, err := NewOracle(config)
	if err != nil {
		return nil, nil, err
	}
	policies, err := dep.SeededPolicies(config.Policy, config.Seed, config.Rate)
	if err != nil {
		return nil, nil, err
	}
	generator := &dep.Generator{
		Oracle:  oracle,
		Policy:  policies,
		Workers: config.Workers,
		Log:     Log,
		Metrics: dep.NewMetrics(reg),
	}
	result, err := generator.Generate(ctx, trees)
	if err != nil {
		return nil, nil, err
	}
	records := make([]treeyaml.SequenceRecord, len(result.Sentences))
	for i, sent := range result.Sentences {
		records[i] = treeyaml.SequenceRecord{Sentence: sent.Index, System: oracle.System.Name()}
		if sent.Unparsable != nil {
			records[i].Unparsable = sent.Unparsable.Err.Error()
			continue
		}
		records[i].Transitions = transition.Names(sent.Sequence.Transitions())
		records[i].Explored = sent.Sequence.Explored()
		records[i].Arcs = treeyaml.Arcs2Yaml(sent.Sequence.Arcs())
	}
	return records, result, nil
}

// transitionCounts counts transitions by name over all records, and
// numbers them in order of first use
func transitionCounts(records []treeyaml.SequenceRecord) (map[string]int, *util.EnumSet[string]) {
	counts := make(map[string]int)
	vocab := util.NewEnumSet[string](64)
	for _, record := range records {
		for _, name := range record.Transitions {
			counts[name]++
			vocab.Add(name)
		}
	}
	return counts, vocab
}

func writeVocabulary(filename string, vocab *util.EnumSet[string]) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	return vocab.Write(file)
}

func OracleConfigOut(config *conf.RunConfig) {
	Log.Info("Configuration")
	for _, line := range []string{
		fmt.Sprintf("Transition System:\t%s", config.System),
		fmt.Sprintf("Oracle:\t\t\t%s", config.Oracle),
		fmt.Sprintf("Labels:\t\t\t%s", config.Labels),
		fmt.Sprintf("Policy:\t\t\t%s (seed %d, rate %v)", config.Policy, config.Seed, config.Rate),
		fmt.Sprintf("Workers:\t\t%d", config.Workers),
	} {
		Log.Info(line)
	}
	Log.Info("Data")
	Log.Infof("Input (%s):\t\t%s", inputFmt, input)
	if outFile != "" {
		Log.Infof("Output:\t\t\t%s", outFile)
	}
}

func OracleRun(cmd *commander.Command, args []string) error {
	VerifyFlags(cmd, []string{"in"})
	config, err := runConfig(cmd)
	if err != nil {
		return err
	}
	SetupLog(config.LogLevel)
	if labelsFile != "" {
		if !VerifyExists(labelsFile) {
			return fmt.Errorf("labels file %s not found", labelsFile)
		}
		relations, err := conf.ReadFile(labelsFile)
		if err != nil {
			return fmt.Errorf("reading dependency labels file %s: %w", labelsFile, err)
		}
		config.Relations = append(config.Relations, relations.Values...)
	}
	if !VerifyExists(input) {
		return fmt.Errorf("input file %s not found", input)
	}
	OracleConfigOut(config)

	trees, sum, err := ReadTrees(input, inputFmt)
	if err != nil {
		return err
	}
	Log.Infof("Read %d sentences from %s (md5 %s)", len(trees), input, sum)

	registry := prometheus.NewRegistry()
	records, result, err := GenerateOracle(context.Background(), config, trees, registry)
	if err != nil {
		return err
	}

	var writer io.Writer = os.Stdout
	if outFile != "" {
		file, err := os.Create(outFile)
		if err != nil {
			return err
		}
		defer file.Close()
		writer = file
	}
	if err := treeyaml.WriteSequences(writer, records); err != nil {
		return fmt.Errorf("writing sequences: %w", err)
	}

	counts, vocab := transitionCounts(records)
	Log.Infof("Sequences: %d parsed, %d unparsable, %d distinct transitions", result.Parsed, result.Unparsable, vocab.Len())
	for _, datum := range util.GetTopNStrInt(counts, 10) {
		Log.Infof("\t%s\t%d", datum.S, datum.N)
	}
	if vocabFile != "" {
		if err := writeVocabulary(vocabFile, vocab); err != nil {
			return fmt.Errorf("writing transition vocabulary: %w", err)
		}
		Log.Infof("Wrote %d transitions to %s", vocab.Len(), vocabFile)
	}
	if families, err := registry.Gather(); err == nil {
		for _, family := range families {
			Log.Debugf("Metric %s: %d series", family.GetName(), len(family.GetMetric()))
		}
	}
	util.LogMemory(Log)
	return nil
}

func OracleCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       OracleRun,
		UsageLine: "oracle <file options> [arguments]",
		Short:     "derives oracle transition sequences for a dependency corpus",
		Long: `
derives the transition sequence of a transition system for each gold tree

	$ ./deporacle oracle -in <file> [-f yaml|conll] [-a system] [-o oracle] [options]

systems: ` + fmt.Sprint(dep.SystemNames()) + `
oracles: static (all systems), prefer-shift (eager), dynamic (eager, hybrid)
policies: first, never, always, explore
`,
		Flag: *flag.NewFlagSet("oracle", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&input, "in", "", "Gold trees file")
	cmd.Flag.StringVar(&inputFmt, "f", FORMAT_YAML, "Input format (yaml or conll)")
	cmd.Flag.StringVar(&outFile, "out", "", "Output sequences file (default stdout)")
	cmd.Flag.StringVar(&confFile, "conf", "", "YAML run configuration; flags override it")
	cmd.Flag.StringVar(&labelsFile, "l", "", "Dependency labels file, one per line")
	cmd.Flag.StringVar(&vocabFile, "tv", "", "Output file for the transition vocabulary, one per line")
	cmd.Flag.StringVar(&flagConfig.System, "a", flagConfig.System, "Transition system")
	cmd.Flag.StringVar(&flagConfig.Oracle, "o", flagConfig.Oracle, "Oracle")
	cmd.Flag.StringVar(&flagConfig.Labels, "label", flagConfig.Labels, "Arc labels (typed or untyped)")
	cmd.Flag.StringVar(&flagConfig.Policy, "policy", flagConfig.Policy, "Exploration policy")
	cmd.Flag.Int64Var(&flagConfig.Seed, "seed", flagConfig.Seed, "Random seed of the exploration policy")
	cmd.Flag.Float64Var(&flagConfig.Rate, "p", flagConfig.Rate, "Exploration rate of the explore policy")
	cmd.Flag.IntVar(&flagConfig.Workers, "j", flagConfig.Workers, "Concurrent sentences; 0 = GOMAXPROCS")
	cmd.Flag.IntVar(&flagConfig.MaxTransitions, "maxtrans", flagConfig.MaxTransitions, "Transition limit per sentence; 0 = by sentence length")
	cmd.Flag.StringVar(&flagConfig.LogLevel, "v", flagConfig.LogLevel, "Log level (debug, info, warn, error)")
	cmd.Flag.BoolVar(&search.SHOW_ORACLE, "showoracle", false, "Show oracle transitions")
	return cmd
}
