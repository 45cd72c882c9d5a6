// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"exonmap/internal/appcore"
	"exonmap/internal/cli"
	"exonmap/internal/engine"
	"exonmap/internal/version"
	"exonmap/internal/visitors"
	"exonmap/internal/writers"
)

const name = "exonmap"

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet(name)
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, []string{"-h"})
		return usage(fs, outw, stderr, 0)
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return usage(fs, outw, stderr, 0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		return usage(fs, outw, stderr, 2)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "%s version %s\n", name, version.Version)
		return flush(outw, stderr, 0)
	}

	coreOpts := appcore.Options{
		GenomeFile:      opts.GenomeFile,
		Chrom:           opts.Chrom,
		Center:          opts.Center,
		Radius:          opts.WindowRadius(),
		SNPFile:         opts.SNPFile,
		ProteinFiles:    opts.ProteinFiles,
		HardList:        opts.HardList,
		Engine:          opts.EngineConfig(nil),
		Threads:         opts.Threads,
		Progress:        opts.Progress,
		Quiet:           opts.Quiet,
		NoMatchExitCode: opts.NoMatchExitCode,
	}
	writer := appcore.NewAlignmentWriterFactory(opts.Output, opts.Sort, opts.Header, opts.Pretty, opts.ExonSeqs)
	return appcore.Run[engine.Alignment](parent, stdout, stderr, coreOpts, visitors.MinCoverage{Min: opts.MinCoverage}.Visit, writer)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func usage(fs *flag.FlagSet, outw *bufio.Writer, stderr io.Writer, code int) int {
	fs.SetOutput(outw)
	fs.Usage()
	return flush(outw, stderr, code)
}

func flush(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return code
}
