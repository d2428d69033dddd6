// Package packer turns directories of source images into packed screen
// assets, one .b file per input.
package packer

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"picopack/pkg/bitmap"
)

func New(logger *zap.Logger, opts ...Option) *Packer {
	p := &Packer{
		fs:  afero.NewOsFs(),
		log: logger,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

type Packer struct {
	fs       afero.Fs
	log      *zap.Logger
	fitW     int
	fitH     int
	progress bool
}

func (p *Packer) newFs(path string) (afero.Fs, error) {
	if exists, err := afero.DirExists(p.fs, path); err != nil {
		return nil, err
	} else if !exists {
		return nil, errors.New("dir not exists")
	}
	return afero.NewBasePathFs(p.fs, path), nil
}

// Run converts every file matching pattern into <outDir>/<base>.b. The output
// directory must already exist; it is never created here. Files are processed
// one at a time, each fully read, converted and written before the next
// starts. The first failure aborts the batch: earlier outputs stay on disk,
// later files are not touched, and a partially written asset is not cleaned
// up.
func (p *Packer) Run(pattern, outDir string) (*Report, error) {
	out, err := p.newFs(outDir)
	if err != nil {
		return nil, &WriteError{Path: outDir, Err: err}
	}

	files, err := afero.Glob(p.fs, pattern)
	if err != nil {
		return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
	}

	var bar *progressbar.ProgressBar
	if p.progress {
		bar = progressbar.Default(int64(len(files)), "packing")
	}

	report := &Report{}
	for _, file := range files {
		entry, err := p.convert(file, out)
		if err != nil {
			return report, err
		}

		report.add(entry)
		if bar != nil {
			_ = bar.Add(1)
		}
	}

	if bar != nil {
		_ = bar.Finish()
	}

	return report, nil
}

func (p *Packer) convert(file string, out afero.Fs) (*Entry, error) {
	name := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	p.log.With(zap.String("name", name)).Info("packing")

	bs, err := afero.ReadFile(p.fs, file)
	if err != nil {
		return nil, &DecodeError{Path: file, Err: err}
	}

	img, _, err := image.Decode(bytes.NewReader(bs))
	if err != nil {
		return nil, &DecodeError{Path: file, Err: err}
	}

	if p.fitW > 0 && p.fitH > 0 {
		img = imaging.Fill(img, p.fitW, p.fitH, imaging.Center, imaging.Lanczos)
	}

	// The panel scans the grid upside down and mirrored, so flip both axes
	// (a 180 degree rotation) before quantizing.
	rgb := imaging.FlipH(imaging.FlipV(img))

	st := channelStats(rgb)
	p.log.With(
		zap.Int("h", rgb.Rect.Dy()),
		zap.Int("w", rgb.Rect.Dx()),
		zap.Float64("red_min", st.RedMin),
		zap.Float64("red_max", st.RedMax),
	).Info("converted")

	var buf bytes.Buffer
	if err := bitmap.Encode(&buf, rgb); err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}

	target := name + ".b"
	if err := afero.WriteFile(out, target, buf.Bytes(), 0644); err != nil {
		return nil, &WriteError{Path: target, Err: err}
	}

	return &Entry{
		Name:   name,
		Width:  rgb.Rect.Dx(),
		Height: rgb.Rect.Dy(),
		Bytes:  buf.Len(),
		Stats:  st,
	}, nil
}
