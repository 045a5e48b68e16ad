// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Program malrepl reads s-expressions one line at a time and prints each back
// in canonical form.
//
// With no arguments it runs an interactive loop on standard input. With
// -scripts it runs every file matching a glob pattern and exits.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar"
	"github.com/golang/glog"
	"github.com/google/malreader/repl"
	wordwrap "github.com/mitchellh/go-wordwrap"
)

const usageWrapColumn = 80

const description = "malrepl reads one s-expression per line, evaluates it with the identity " +
	"evaluator and prints the result in canonical form: list elements separated by single " +
	"spaces, commas and comments dropped between tokens, integers in base 10. " +
	"A line with an unterminated list reports an error and, with -fail_soft, prints (). " +
	"Only the first form on each line is read."

var (
	cfg = registerFlags(flag.CommandLine)

	readFile repl.FileReaderFunc = func(_ context.Context, path string) ([]byte, error) {
		return ioutil.ReadFile(path)
	}
)

type config struct {
	prompt       string
	failSoft     bool
	outputFormat string
	scripts      string
}

func registerFlags(fs *flag.FlagSet) *config {
	cfg := &config{}
	fs.StringVar(&cfg.prompt, "prompt", "user> ", "prompt written before each interactive line")
	fs.BoolVar(&cfg.failSoft, "fail_soft", true, "print () for a line with an unterminated list after reporting the error")
	fs.StringVar(&cfg.outputFormat, "output_format", "sexpr", "output format: sexpr, json or prototext")
	fs.StringVar(&cfg.scripts, "scripts", "", "if specified, a glob pattern (** is supported) of script files to run instead of reading standard input")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "%s\n\nUsage of %s:\n", wordwrap.WrapString(description, usageWrapColumn), os.Args[0])
		fs.PrintDefaults()
	}
	return cfg
}

func main() {
	flag.Parse()
	err := cfg.run(context.Background(), os.Stdin, os.Stdout, os.Stderr)
	glog.Flush()
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal malrepl error: %v\n", err)
		os.Exit(1)
	}
}

func (c *config) run(ctx context.Context, in io.Reader, out, errOut io.Writer) error {
	opts, err := c.loopOptions()
	if err != nil {
		return err
	}
	if c.scripts != "" {
		return c.runScripts(ctx, opts, out, errOut)
	}
	return repl.New(opts).Run(ctx, in, out, errOut)
}

func (c *config) loopOptions() (repl.Options, error) {
	opts := repl.Options{
		Prompt:    c.prompt,
		Evaluator: repl.Identity,
		FailSoft:  c.failSoft,
	}
	switch c.outputFormat {
	case "sexpr":
		opts.Print = repl.CanonicalPrinter
	case "json":
		opts.Print = repl.JSONPrinter
	case "prototext":
		opts.Print = repl.TextPrinter
	default:
		return repl.Options{}, fmt.Errorf("invalid -output_format %q, want sexpr, json or prototext", c.outputFormat)
	}
	return opts, nil
}

func (c *config) runScripts(ctx context.Context, opts repl.Options, out, errOut io.Writer) error {
	paths, err := doublestar.Glob(c.scripts)
	if err != nil {
		return fmt.Errorf("bad -scripts pattern %q: %w", c.scripts, err)
	}
	if len(paths) == 0 {
		return fmt.Errorf("no files match -scripts pattern %q", c.scripts)
	}
	sort.Strings(paths)
	glog.Infof("running %d scripts matching %s", len(paths), c.scripts)

	results, err := repl.RunScripts(ctx, opts, paths, readFile)
	if err != nil {
		return err
	}
	for _, r := range results {
		if _, err := io.WriteString(out, r.Output); err != nil {
			return err
		}
		if _, err := io.WriteString(errOut, r.Errors); err != nil {
			return err
		}
	}
	return nil
}
