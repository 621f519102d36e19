//  Copyright (c) 2023 Uber Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command dep-tregex applies tree-rewrite scripts to a CoNLL-X stream
// ("run") or prints the node indices an ad-hoc pattern matches
// ("query"). It is a thin wrapper over the conll/script/driver/pattern
// packages; the multiplexed CLI's other subcommands (words, wc, nth,
// head, tail, shuf, sed, html, gdb) are out of scope.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/yandex/dep-tregex/config"
	"github.com/yandex/dep-tregex/conll"
	"github.com/yandex/dep-tregex/driver"
	"github.com/yandex/dep-tregex/pattern"
	"github.com/yandex/dep-tregex/script"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: dep-tregex <run|query> [flags]")
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "run":
		err = runCommand(os.Args[2:])
	case "query":
		err = queryCommand(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "unknown subcommand %q; want run or query\n", os.Args[1])
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "dep-tregex:", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.LoadFile(path)
}

// runCommand applies every script in -script to each tree read from
// -in (default stdin), writing the results to -out (default stdout).
func runCommand(args []string) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	scriptPath := fs.String("script", "", "path to a script file (required)")
	configPath := fs.String("config", "", "path to an optional YAML run configuration")
	inPath := fs.String("in", "", "input CoNLL-X file (default stdin)")
	outPath := fs.String("out", "", "output CoNLL-X file (default stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *scriptPath == "" {
		return fmt.Errorf("run: -script is required")
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return fmt.Errorf("run: loading config: %w", err)
	}
	pattern.SetRegexCacheLimit(cfg.RegexCacheSize)

	scriptText, err := os.ReadFile(*scriptPath)
	if err != nil {
		return fmt.Errorf("run: reading script: %w", err)
	}
	scripts, err := script.ParseScripts(string(scriptText))
	if err != nil {
		return fmt.Errorf("run: compiling script: %w", err)
	}

	in, closeIn, err := openInput(*inPath)
	if err != nil {
		return err
	}
	defer closeIn()

	out, closeOut, err := openOutput(*outPath)
	if err != nil {
		return err
	}
	defer closeOut()

	reader := conll.NewTreeReader(in)
	for {
		t, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			if cfg.ContinueOnCodecError {
				if skipErr := reader.SkipToNextBlank(); skipErr != nil {
					return fmt.Errorf("run: %w", skipErr)
				}
				fmt.Fprintln(os.Stderr, "dep-tregex: skipping malformed tree:", err)
				continue
			}
			return fmt.Errorf("run: %w", err)
		}

		rewritten, err := driver.Run(t, scripts)
		if err != nil {
			return fmt.Errorf("run: %w", err)
		}
		if err := conll.WriteTree(out, rewritten); err != nil {
			return fmt.Errorf("run: writing output: %w", err)
		}
	}
}

// queryCommand prints "treeIndex:nodeIndex" for every node in every
// tree read from -in that -pattern matches.
func queryCommand(args []string) error {
	fs := flag.NewFlagSet("query", flag.ExitOnError)
	patternText := fs.String("pattern", "", "ad-hoc tree-pattern expression (required)")
	inPath := fs.String("in", "", "input CoNLL-X file (default stdin)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *patternText == "" {
		return fmt.Errorf("query: -pattern is required")
	}

	pat, err := script.ParsePattern(*patternText)
	if err != nil {
		return fmt.Errorf("query: compiling pattern: %w", err)
	}

	in, closeIn, err := openInput(*inPath)
	if err != nil {
		return err
	}
	defer closeIn()

	reader := conll.NewTreeReader(in)
	treeIndex := 0
	for {
		t, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("query: %w", err)
		}
		treeIndex++

		refs := &pattern.Backrefs{}
		for node := 0; node <= t.Len(); node++ {
			refs.Clear()
			if pat.Match(t, node, refs) {
				fmt.Printf("%d:%d\n", treeIndex, node)
			}
		}
	}
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening input: %w", err)
	}
	return f, func() { f.Close() }, nil
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening output: %w", err)
	}
	return f, func() { f.Close() }, nil
}
