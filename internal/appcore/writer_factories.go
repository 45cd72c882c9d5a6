package appcore

import (
	"io"

	"exonmap/internal/engine"
	"exonmap/internal/pretty"
	"exonmap/internal/runutil"
	"exonmap/internal/writers"
)

// AlignmentWriterFactory starts the writer for one output format.
type AlignmentWriterFactory struct {
	Format   string
	Sort     bool
	Header   bool
	Pretty   bool
	ExonSeqs bool
}

func NewAlignmentWriterFactory(format string, sort, header, pretty, exonSeqs bool) AlignmentWriterFactory {
	return AlignmentWriterFactory{Format: format, Sort: sort, Header: header, Pretty: pretty, ExonSeqs: exonSeqs}
}

func (w AlignmentWriterFactory) NeedSeq() bool {
	return runutil.ComputeNeedSeq(w.Format, w.ExonSeqs, w.Pretty)
}

func (w AlignmentWriterFactory) Start(out io.Writer, bufSize int) (chan<- engine.Alignment, <-chan error) {
	return writers.StartAlignmentWriter(out, w.Format, writers.Options{
		Sort:   w.Sort,
		Header: w.Header,
		Pretty: w.Pretty,
		Render: pretty.DefaultOptions,
	}, bufSize)
}
