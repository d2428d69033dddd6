package packer

import "github.com/spf13/afero"

type Option func(p *Packer)

// WithFs overrides the filesystem, letting tests run on memory backends.
func WithFs(fs afero.Fs) Option {
	return func(p *Packer) {
		p.fs = fs
	}
}

// WithFit scales and center-crops every source to w x h with Lanczos
// resampling before packing. It is the supported route for sources larger
// than a header byte can describe.
func WithFit(w, h int) Option {
	return func(p *Packer) {
		p.fitW = w
		p.fitH = h
	}
}

// WithProgress draws a terminal progress bar across the batch.
func WithProgress(enabled bool) Option {
	return func(p *Packer) {
		p.progress = enabled
	}
}
