package packer

import (
	"github.com/inhies/go-bytesize"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// Entry records one converted asset.
type Entry struct {
	Name   string
	Width  int
	Height int
	Bytes  int
	Stats  Stats
}

// Report accumulates batch results in processing order. A Run that fails
// midway still returns the entries finished before the failure.
type Report struct {
	entries []*Entry
}

func (r *Report) add(e *Entry) {
	r.entries = append(r.entries, e)
}

func (r *Report) Entries() []*Entry {
	return r.entries
}

func (r *Report) Len() int {
	return len(r.entries)
}

// TotalBytes returns the combined size of all written assets.
func (r *Report) TotalBytes() int {
	return lo.Reduce(r.entries, func(sum int, e *Entry, _ int) int {
		return sum + e.Bytes
	}, 0)
}

// Log writes a one line batch summary.
func (r *Report) Log(logger *zap.Logger) {
	logger.With(
		zap.Int("files", r.Len()),
		zap.String("size", bytesize.New(float64(r.TotalBytes())).String()),
	).Info("batch done")
}
