package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"

	"property-forecast/internal/recorder"
	"property-forecast/internal/report"
)

var (
	logLevel = flag.String("log-level", "", "Log level (debug, info, warn, error); defaults to LOG_LEVEL or warn")
	plain    = flag.Bool("plain", false, "Print raw markdown instead of styled terminal output")
	wordWrap = flag.Int("wrap", 100, "Word wrap width for styled output")
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")

	commander.Register(&forecastCmd{}, "forecast")
	commander.Register(&sweepCmd{}, "forecast")
	commander.Register(&scheduleCmd{}, "tools")
	commander.Register(&defaultsCmd{}, "tools")
	commander.Register(&historyCmd{}, "tools")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetLevel(logrus.WarnLevel)

	level := *logLevel
	if level == "" {
		level = os.Getenv("LOG_LEVEL")
	}
	if lvl, err := logrus.ParseLevel(level); err == nil {
		log.SetLevel(lvl)
	}
	return log
}

func printMarkdown(md string) {
	if *plain {
		fmt.Print(md)
		return
	}
	out, err := report.Render(md, *wordWrap)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// openRecorder returns a no-op recorder when path is empty.
func openRecorder(path string, log logrus.FieldLogger) (recorder.Recorder, error) {
	if path == "" {
		return recorder.NewNoopRecorder(), nil
	}
	return recorder.NewSQLiteRecorder(path, log)
}
