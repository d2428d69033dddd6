package fetch

import (
	"github.com/go-resty/resty/v2"
	"github.com/spf13/afero"
)

type Option func(f *Fetcher)

// WithFs overrides the filesystem, letting tests run on memory backends.
func WithFs(fs afero.Fs) Option {
	return func(f *Fetcher) {
		f.fs = fs
	}
}

func WithClient(cli *resty.Client) Option {
	return func(f *Fetcher) {
		f.cli = cli
	}
}
