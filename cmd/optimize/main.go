// optimize runs the engine once over a JSON fixture and prints the result.
// No database or redis is involved.
//
//	optimize -in testdata/rested_week.json -now 2024-09-01T08:00:00Z
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/2beens/recoverycoach/internal/engine"
	"github.com/2beens/recoverycoach/internal/logging"
	"github.com/2beens/recoverycoach/internal/plan"

	log "github.com/sirupsen/logrus"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		log.Errorf("optimize: %s", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	flags := flag.NewFlagSet("optimize", flag.ContinueOnError)
	inPath := flags.String("in", "-", "fixture path, - for stdin")
	nowStr := flags.String("now", "", "evaluation time (RFC3339), overrides the fixture")
	catalogPath := flags.String("catalog", "", "workout catalog TOML, embedded default when empty")
	sleepWindow := flags.Int("sleep-window", 0, "number of recent nights scored, default when 0")
	logLevel := flags.String("log-level", "info", "log level")
	pretty := flags.Bool("pretty", true, "indent the JSON output")
	if err := flags.Parse(args); err != nil {
		return err
	}

	// stdout carries the result
	log.SetOutput(os.Stderr)
	log.SetLevel(logging.GetLevel(*logLevel))

	in, err := readInput(*inPath, stdin)
	if err != nil {
		return err
	}
	if *nowStr != "" {
		if in.Now, err = time.Parse(time.RFC3339, *nowStr); err != nil {
			return fmt.Errorf("parse -now: %w", err)
		}
	}
	if in.Now.IsZero() {
		in.Now = time.Now().UTC()
	}

	config := engine.DefaultCoreConfig()
	config.Recovery.SleepWindow = *sleepWindow
	if *catalogPath != "" {
		data, err := os.ReadFile(*catalogPath)
		if err != nil {
			return fmt.Errorf("read catalog: %w", err)
		}
		if config.Catalog, err = plan.LoadCatalog(data); err != nil {
			return err
		}
	}

	core, err := engine.NewCore(config)
	if err != nil {
		return err
	}

	out, err := core.Compute(*in)
	if err != nil {
		return err
	}
	log.Debugf("computed for [%s]: recovery %d, %d insights", in.Profile.UserID, out.Recovery.Overall, len(out.Insights.Insights))

	encoder := json.NewEncoder(stdout)
	if *pretty {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(out)
}

func readInput(path string, stdin io.Reader) (*engine.Input, error) {
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open fixture: %w", err)
		}
		defer func() {
			if err := f.Close(); err != nil {
				log.Warnf("close fixture: %s", err)
			}
		}()
		r = f
	}

	var in engine.Input
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}
	return &in, nil
}
