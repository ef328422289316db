package app

import (
	"os"

	"github.com/gonuts/commander"
	"github.com/kataras/golog"
)

var (
	// Log is shared by all commands; its level is set by the -v flag
	Log = golog.New()

	// file names
	input      string
	inputGold  string
	inputFmt   string
	outFile    string
	labelsFile string
	vocabFile  string
	confFile   string
	logLevel   string
)

const (
	FORMAT_YAML  = "yaml"
	FORMAT_CONLL = "conll"
)

func SetupLog(level string) {
	Log.SetOutput(os.Stderr)
	Log.SetLevel(level)
}

func VerifyExists(filename string) bool {
	_, err := os.Stat(filename)
	if err != nil {
		Log.Errorf("Error accessing file %s: %v", filename, err)
		return false
	}
	return true
}

func VerifyFlags(cmd *commander.Command, required []string) {
	for _, flag := range required {
		f := cmd.Flag.Lookup(flag)
		if f.Value.String() == "" {
			Log.Errorf("Required flag %s not set", f.Name)
			cmd.Usage()
			os.Exit(1)
		}
	}
}
