// Package fetch downloads source images into a local directory so they can
// be packed offline.
package fetch

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path"

	"github.com/go-resty/resty/v2"
	"github.com/inhies/go-bytesize"
	"github.com/rs/xid"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

func New(dir string, logger *zap.Logger, opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		fs:  afero.NewOsFs(),
		cli: resty.New().SetDoNotParseResponse(true),
		log: logger,
	}

	for _, opt := range opts {
		opt(f)
	}

	if exists, err := afero.DirExists(f.fs, dir); err != nil {
		return nil, err
	} else if !exists {
		return nil, errors.New("dir not exists")
	}
	f.fs = afero.NewBasePathFs(f.fs, dir)

	return f, nil
}

type Fetcher struct {
	fs  afero.Fs
	cli *resty.Client
	log *zap.Logger
}

// Filename derives the target name from the URL path, falling back to a
// generated id when the URL has none.
func Filename(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return xid.New().String()
	}

	name := path.Base(u.Path)
	if name == "." || name == "/" || name == "" {
		return xid.New().String()
	}

	return name
}

// Fetch downloads raw into the directory unless the target already exists.
// It returns the name written or kept.
func (f *Fetcher) Fetch(raw string) (string, error) {
	name := Filename(raw)

	if exists, err := afero.Exists(f.fs, name); err != nil {
		return "", err
	} else if exists {
		f.log.With(zap.String("file", name)).Debug("already fetched")
		return name, nil
	}

	resp, err := f.cli.R().Get(raw)
	if err != nil {
		return "", err
	}

	defer func() {
		_ = resp.RawBody().Close()
	}()

	bar := progressbar.DefaultBytes(resp.RawResponse.ContentLength, fmt.Sprintf("Downloading %s", raw))

	var buf bytes.Buffer
	if _, err := io.Copy(io.MultiWriter(&buf, bar), resp.RawBody()); err != nil {
		return "", err
	}

	if err := afero.WriteFile(f.fs, name, buf.Bytes(), 0644); err != nil {
		return "", err
	}

	f.log.With(
		zap.String("file", name),
		zap.String("size", bytesize.New(float64(buf.Len())).String()),
	).Info("fetched")

	return name, nil
}
