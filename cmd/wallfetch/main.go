package main

import (
	"errors"
	"log"
	"strings"

	"github.com/moolex/wallhaven-go/api"
	"github.com/samber/lo"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"picopack/pkg/fetch"
	"picopack/pkg/packer"
)

var images = flag.String("images", "images", "download dir")
var count = flag.Int("count", 5, "wallpapers to fetch")
var thumbs = flag.Bool("thumbs", false, "fetch thumbnails instead of originals")
var pack = flag.Bool("pack", false, "pack downloads when done")
var assets = flag.String("assets", "assets", "output dir for --pack")
var fit = flag.Int("fit", 240, "fit size for --pack")
var debug = flag.Bool("debug", false, "set debug")
var whKey = flag.String("wh-key", "", "wallhaven api key")
var whQuery = flag.String("wh-query", "", "wallhaven query string")
var whCategory = flag.String("wh-category", "", "wallhaven category names")
var whPurity = flag.String("wh-purity", "", "wallhaven purity levels")
var whRandom = flag.Bool("wh-random", true, "wallhaven random sort")
var whSorting = flag.String("wh-sorting", "", "wallhaven sorting type")
var whToplist = flag.String("wh-toplist", "1M", "wallhaven toplist range")
var whRatio = flag.String("wh-ratio", "1x1", "wallhaven ratio filter")

func main() {
	flag.Parse()

	logger, _ := zap.NewDevelopment()

	wh := api.New(*whKey)
	wh.SetLogger(logger)
	if *debug {
		wh.SetDebug()
	}

	q := api.NewQuery(*whQuery)
	if *whCategory != "" {
		q.SetCategory(strings.Split(*whCategory, ",")...)
	}
	if *whPurity != "" {
		q.SetPurity(strings.Split(*whPurity, ",")...)
	}
	if *whRatio != "" {
		q.SetRatio(*whRatio)
	}
	if *whRandom {
		q.Random()
	} else if *whSorting != "" {
		q.SortBy(*whSorting)
	} else {
		q.SortBy(api.SortTopList)
		q.TopRange = *whToplist
	}

	ret, err := wh.Query(q)
	if err != nil {
		log.Fatal(err)
	}

	f, err := fetch.New(*images, logger)
	if err != nil {
		log.Fatal(err)
	}

	for i := 0; i < *count; i++ {
		wp, err := ret.Pick(api.PickLoop, api.PickRand)
		if err != nil {
			if errors.Is(err, api.ErrNoMoreItems) {
				break
			}
			log.Fatal(err)
		}

		if _, err := f.Fetch(lo.Ternary(*thumbs, wp.Thumbs.Original, wp.Path)); err != nil {
			logger.With(zap.Error(err)).Info("fetch failed")
		}
	}

	if *pack {
		report, err := packer.New(logger, packer.WithFit(*fit, *fit), packer.WithProgress(true)).
			Run(*images+"/*", *assets)
		if err != nil {
			log.Fatal(err)
		}
		report.Log(logger)
	}
}
