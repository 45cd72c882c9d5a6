// internal/cliutil/cliutil.go
package cliutil

import (
	"flag"
	"fmt"
	"path/filepath"
	"strings"
)

// boolFlags returns names of flags that take no value.
func boolFlags(fs *flag.FlagSet) map[string]bool {
	m := map[string]bool{}
	fs.VisitAll(func(f *flag.Flag) {
		if bf, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && bf.IsBoolFlag() {
			m[f.Name] = true
		}
	})
	return m
}

// SplitArgs lets flags and input files interleave on the command line.
// It returns the flag tokens (with their values) for fs.Parse and the
// remaining inputs in order. Everything after "--" is an input; a lone
// "-" is stdin.
func SplitArgs(fs *flag.FlagSet, argv []string) (flagArgs, inputs []string) {
	takesNoValue := boolFlags(fs)
	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		switch {
		case arg == "--":
			return flagArgs, append(inputs, argv[i+1:]...)
		case arg == "-" || !strings.HasPrefix(arg, "-"):
			inputs = append(inputs, arg)
			continue
		}
		flagArgs = append(flagArgs, arg)
		if strings.Contains(arg, "=") {
			continue
		}
		if !takesNoValue[strings.TrimLeft(arg, "-")] && i+1 < len(argv) {
			i++
			flagArgs = append(flagArgs, argv[i])
		}
	}
	return flagArgs, inputs
}

// ExpandInputs expands glob patterns among input paths and drops repeats,
// keeping first-seen order. A pattern that matches nothing is an error.
func ExpandInputs(paths []string) ([]string, error) {
	var out []string
	seen := map[string]bool{}
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	for _, p := range paths {
		if p == "-" || !strings.ContainsAny(p, "*?[") {
			add(p)
			continue
		}
		m, err := filepath.Glob(p)
		if err != nil {
			return nil, fmt.Errorf("bad glob %q: %v", p, err)
		}
		if len(m) == 0 {
			return nil, fmt.Errorf("no input matched %q", p)
		}
		for _, x := range m {
			add(x)
		}
	}
	return out, nil
}
