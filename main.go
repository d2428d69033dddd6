package main

import (
	"log"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"picopack/pkg/packer"
)

var images = flag.String("images", "images/*.png", "source image glob")
var assets = flag.String("assets", "assets", "output dir")
var fit = flag.Int("fit", 0, "fit sources to this square side before packing")
var progress = flag.Bool("progress", false, "show a progress bar")
var debug = flag.Bool("debug", false, "set debug")

func main() {
	flag.Parse()

	logger, _ := zap.NewDevelopment()
	if !*debug {
		logger = logger.WithOptions(zap.IncreaseLevel(zap.InfoLevel))
	}

	opts := []packer.Option{packer.WithProgress(*progress)}
	if *fit > 0 {
		opts = append(opts, packer.WithFit(*fit, *fit))
	}

	report, err := packer.New(logger, opts...).Run(*images, *assets)
	if err != nil {
		log.Fatal(err)
	}

	report.Log(logger)
}
