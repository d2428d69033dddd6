package main

import (
	"net/http"

	flag "github.com/spf13/pflag"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"picopack/pkg/device/picoscreen"
	"picopack/pkg/device/remote"
	"picopack/pkg/proto"
)

var serial = flag.String("serial", "ttyACM0", "serial name")
var listen = flag.String("listen", ":9123", "listen addr")

func main() {
	flag.Parse()

	fx.New(
		fx.Provide(
			func() (*proto.Serial, *http.Server, *zap.Logger) {
				logger, _ := zap.NewDevelopment()
				return proto.NewSerial(*serial),
					&http.Server{Addr: *listen},
					logger
			},
			picoscreen.New,
		),
		fx.Invoke(
			remote.Proxy,
		),
	).Run()
}
