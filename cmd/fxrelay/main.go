package main

import (
	"net/http"

	flag "github.com/spf13/pflag"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"framefx/pkg/device/inch35"
	"framefx/pkg/device/remote"
	"framefx/pkg/device/virtual"
	"framefx/pkg/proto"
)

var serial = flag.String("serial", "ttyACM0", "serial name, or \"mock\" for a logging display")
var listen = flag.String("listen", ":9123", "listen addr")
var debug = flag.Bool("debug", false, "set debug")

func main() {
	flag.Parse()

	fx.New(
		fx.Provide(
			func() (*zap.Logger, error) {
				if *debug {
					return zap.NewDevelopment()
				}
				return zap.NewProduction()
			},
			func() (*proto.Serial, *http.Server) {
				return proto.NewSerial(*serial),
					&http.Server{Addr: *listen}
			},
			func(s *proto.Serial, logger *zap.Logger) (proto.Control, error) {
				if *serial == "mock" {
					return virtual.Mock(logger), nil
				}
				return inch35.New(s, logger)
			},
		),
		fx.Invoke(
			remote.Proxy,
		),
	).Run()
}
