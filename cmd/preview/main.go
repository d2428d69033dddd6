package main

import (
	"bytes"
	"log"
	"os"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/inhies/go-bytesize"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"picopack/pkg/bitmap"
	"picopack/pkg/device/picoscreen"
	"picopack/pkg/device/remote"
	"picopack/pkg/device/virtual"
	"picopack/pkg/mixer"
	"picopack/pkg/proto"
)

var asset = flag.String("asset", "", "packed asset to preview")
var out = flag.String("out", "", "write a png instead of drawing")
var serial = flag.String("serial", "", "serial name or remote addr, empty logs only")
var atX = flag.Int("x", 0, "draw position x")
var atY = flag.Int("y", 0, "draw position y")
var effect = flag.String("effect", "", "draw effect: block or stripes")
var debug = flag.Bool("debug", false, "set debug")

func main() {
	flag.Parse()

	logger, _ := zap.NewDevelopment()
	if !*debug {
		logger = logger.WithOptions(zap.IncreaseLevel(zap.InfoLevel))
	}

	if *asset == "" {
		log.Fatal("need --asset")
	}

	bs, err := os.ReadFile(*asset)
	if err != nil {
		log.Fatal(err)
	}

	img, err := bitmap.Decode(bytes.NewReader(bs))
	if err != nil {
		log.Fatal(err)
	}

	logger.With(
		zap.Int("h", img.Bounds().Dy()),
		zap.Int("w", img.Bounds().Dx()),
		zap.String("size", bytesize.New(float64(len(bs))).String()),
	).Info("decoded")

	if *out != "" {
		if err := imaging.Save(img, *out); err != nil {
			log.Fatal(err)
		}
		return
	}

	var dev proto.Screen
	var devErr error

	switch {
	case *serial == "":
		dev = virtual.Mock(logger)
	case strings.Contains(*serial, ":"):
		dev, devErr = remote.New(*serial)
	default:
		dev, devErr = picoscreen.New(proto.NewSerial(*serial), logger)
	}
	if devErr != nil {
		log.Fatal(devErr)
	}

	defer func() {
		_ = dev.Close()
	}()

	if *effect != "" {
		var eff mixer.Effect
		switch *effect {
		case "block":
			eff = mixer.EffectBlock()
		case "stripes":
			eff = mixer.EffectStripes(20)
		default:
			log.Fatal("unknown effect")
		}

		if err := mixer.NewDrawer(dev, mixer.WithEffect(eff)).Canvas(img); err != nil {
			log.Fatal(err)
		}
		return
	}

	if err := dev.Draw(*atX, *atY, img); err != nil {
		log.Fatal(err)
	}
}
