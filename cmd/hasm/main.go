// This file is part of hasm15 - https://github.com/arbora/hasm15
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

// Command hasm is the command-line driver for the hasm15 assembler: it
// opens <name>.as, runs the two-pass translation, and writes <name>.am,
// <name>.ob, <name>.ent and <name>.ext.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/arbora/hasm15/asm"
	"github.com/arbora/hasm15/internal/config"
	"github.com/arbora/hasm15/internal/objio"
)

var (
	configPath string
	debug      bool
)

// exit codes: 0 success, 1 bad usage, 2 assembly reported errors, 3 I/O failure.
const (
	exitOK = iota
	exitUsage
	exitAssembly
	exitIO
)

func atExit(code int, err error) {
	if err != nil {
		if debug {
			fmt.Fprintf(os.Stderr, "%+v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "%v\n", err)
		}
	}
	os.Exit(code)
}

func main() {
	flag.StringVar(&configPath, "config", "", "path to a TOML `file` overriding the assembler's default constants")
	flag.BoolVar(&debug, "debug", false, "print full error stacks")
	flag.Parse()

	if flag.NArg() != 1 {
		atExit(exitUsage, errors.Errorf("usage: %s <base-name>", os.Args[0]))
		return
	}
	base := flag.Arg(0)

	cfg, err := config.Load(configPath)
	if err != nil {
		atExit(exitIO, err)
		return
	}

	code, err := assembleFile(base, cfg)
	atExit(code, err)
}

func assembleFile(base string, cfg config.Config) (int, error) {
	src, err := os.Open(withExt(base, extSource))
	if err != nil {
		return exitIO, errors.Wrap(err, "open source failed")
	}
	defer src.Close()

	res, err := asm.Run(src,
		asm.StartIC(cfg.StartAddress),
		asm.MaxErrors(cfg.MaxErrors),
		asm.WordBits(cfg.WordBits),
	)
	if err != nil {
		return exitIO, errors.Wrap(err, "assemble failed")
	}

	if err := writeFile(withExt(base, extExpanded), res.Expanded); err != nil {
		return exitIO, err
	}

	if len(res.Errors) > 0 {
		for _, e := range res.Errors {
			fmt.Fprintln(os.Stderr, e.String())
		}
		return exitAssembly, nil
	}

	if err := writeObject(withExt(base, extObject), res); err != nil {
		return exitIO, err
	}
	if err := writeAndPruneExterns(withExt(base, extExterns), res); err != nil {
		return exitIO, err
	}
	if err := writeAndPruneEntries(withExt(base, extEntries), res); err != nil {
		return exitIO, err
	}

	return exitOK, nil
}

func writeFile(path, content string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create "+path+" failed")
	}
	defer f.Close()
	if _, err := f.WriteString(content); err != nil {
		return errors.Wrap(err, "write "+path+" failed")
	}
	return nil
}

func writeObject(path string, res *asm.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create "+path+" failed")
	}
	defer f.Close()
	if err := objio.WriteObject(f, res.CodeLines, res.DataLines, res.Words); err != nil {
		return errors.Wrap(err, "write "+path+" failed")
	}
	return nil
}

func writeAndPruneExterns(path string, res *asm.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create "+path+" failed")
	}
	if err := objio.WriteExternals(f, res.Externals); err != nil {
		f.Close()
		return errors.Wrap(err, "write "+path+" failed")
	}
	f.Close()
	return objio.RemoveIfEmpty(path)
}

func writeAndPruneEntries(path string, res *asm.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create "+path+" failed")
	}
	if err := objio.WriteEntries(f, res.Entries); err != nil {
		f.Close()
		return errors.Wrap(err, "write "+path+" failed")
	}
	f.Close()
	return objio.RemoveIfEmpty(path)
}
