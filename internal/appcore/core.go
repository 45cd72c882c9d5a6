// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"exonmap/internal/cmdutil"
	"exonmap/internal/engine"
	"exonmap/internal/fasta"
	"exonmap/internal/genome"
	"exonmap/internal/pipeline"
	"exonmap/internal/runutil"
	"exonmap/internal/writers"
)

// Options is everything Run needs beyond the writer.
type Options struct {
	GenomeFile   string
	Chrom        string
	Center       int
	Radius       int
	SNPFile      string
	ProteinFiles []string
	HardList     string

	Engine  engine.Config
	Threads int

	Progress        bool
	Quiet           bool
	NoMatchExitCode int
}

type VisitorFunc[T any] func(engine.Alignment) (keep bool, out T, err error)

type WriterFactory[T any] interface {
	NeedSeq() bool
	Start(out io.Writer, bufSize int) (chan<- T, <-chan error)
}

// Run loads the window and proteins, aligns every protein and streams the
// kept results to the writer. The return value is the process exit code.
func Run[T any](
	parent context.Context,
	stdout, stderr io.Writer,
	o Options,
	visit VisitorFunc[T],
	wf WriterFactory[T],
) int {
	target, err := loadTarget(stderr, o)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}
	prots, err := loadProteins(stderr, o.ProteinFiles, o.Quiet)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}
	if o.HardList != "" {
		ids, err := runutil.ReadIDList(o.HardList)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 3
		}
		o.Engine.HardProteins = append(o.Engine.HardProteins, ids...)
	}

	thr := runutil.ComputeThreads(o.Threads)
	eng := engine.New(o.Engine)

	outw := bufio.NewWriter(stdout)
	inCh, writeErr := wf.Start(outw, thr*4)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	bar := newProgress(stderr, o.Progress && !o.Quiet, len(prots))

	total, perr := cmdutil.RunStream[T](
		ctx,
		pipeline.Config{Threads: thr, NeedSeq: wf.NeedSeq()},
		target,
		prots,
		eng,
		func(a engine.Alignment) (bool, T, error) {
			bar.step()
			for _, w := range a.Warnings {
				cmdutil.Warnf(stderr, o.Quiet, "%s: %s: %s", a.ProteinID, w.Kind, w.Message)
			}
			return visit(a)
		},
		func(x T) error {
			select {
			case inCh <- x:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	)
	bar.done(perr == nil)

	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		fmt.Fprintln(stderr, werr)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		fmt.Fprintln(stderr, e)
		return 3
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return 130
		}
		fmt.Fprintln(stderr, perr)
		return 3
	}
	if total == 0 {
		return o.NoMatchExitCode
	}
	return 0
}

func loadTarget(stderr io.Writer, o Options) (*genome.Target, error) {
	win, err := genome.LoadWindow(o.GenomeFile, o.Chrom, o.Center, o.Radius)
	if err != nil {
		return nil, err
	}
	cmdutil.Infof(stderr, o.Quiet, "window %s:%s-%s (%s)",
		win.Chrom, humanize.Comma(int64(win.Start)), humanize.Comma(int64(win.End)),
		humanize.SIWithDigits(float64(win.Len()), 1, "bp"))

	var snps *genome.SNPTable
	if o.SNPFile != "" {
		if snps, err = genome.LoadSNPTable(o.SNPFile, o.Chrom); err != nil {
			return nil, err
		}
		inWin := 0
		for _, p := range snps.Positions() {
			if win.Contains(p) {
				inWin++
			}
		}
		cmdutil.Infof(stderr, o.Quiet, "%s SNPs loaded, %s inside the window",
			humanize.Comma(int64(snps.Len())), humanize.Comma(int64(inWin)))
	}
	return genome.NewTarget(win, snps), nil
}

// loadProteins reads every protein file in order. Repeated IDs are kept
// and reported.
func loadProteins(stderr io.Writer, paths []string, quiet bool) ([]engine.Protein, error) {
	var prots []engine.Protein
	for _, p := range paths {
		recs, err := fasta.ReadProteins(p)
		if err != nil {
			return nil, err
		}
		for _, r := range recs {
			prots = append(prots, engine.NewProtein(r.ID, r.Desc, r.Seq))
		}
	}
	seen := runutil.NewLRUSet[string](len(prots))
	for _, p := range prots {
		if seen.Add(p.ID) {
			cmdutil.Warnf(stderr, quiet, "duplicate protein ID %q", p.ID)
		}
	}
	cmdutil.Infof(stderr, quiet, "%s proteins from %d file(s)", humanize.Comma(int64(len(prots))), len(paths))
	return prots, nil
}
