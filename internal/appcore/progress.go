package appcore

import (
	"io"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// progress is a protein counter on stderr. The zero value is a no-op.
type progress struct {
	p    *mpb.Progress
	bar  *mpb.Bar
	last time.Time
}

func newProgress(dst io.Writer, on bool, total int) *progress {
	if !on {
		return &progress{}
	}
	const label = "aligned proteins: "
	p := mpb.New(mpb.WithWidth(40), mpb.WithOutput(dst))
	bar := p.AddBar(int64(total),
		mpb.PrependDecorators(
			decor.Name(label, decor.WC{W: len(label), C: decor.DindentRight}),
			decor.CountersNoUnit("%d / %d", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.Percentage(decor.WC{W: 5}),
			decor.Name(" ETA: "),
			decor.EwmaETA(decor.ET_STYLE_GO, 64),
			decor.OnComplete(decor.Name(""), ". done"),
		),
	)
	return &progress{p: p, bar: bar, last: time.Now()}
}

// step is called once per finished protein, from a single goroutine.
func (pr *progress) step() {
	if pr.bar == nil {
		return
	}
	now := time.Now()
	pr.bar.EwmaIncrBy(1, now.Sub(pr.last))
	pr.last = now
}

func (pr *progress) done(ok bool) {
	if pr.p == nil {
		return
	}
	if !ok || !pr.bar.Completed() {
		pr.bar.Abort(false)
	}
	pr.p.Wait()
}
