package remote

import (
	"bytes"
	"context"
	"image/png"
	"log"
	"net/http"
	"net/rpc"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"picopack/pkg/proto"
)

// Proxy publishes dev over net/rpc on srv for the lifetime of the fx app.
func Proxy(dev proto.Screen, srv *http.Server, lifecycle fx.Lifecycle) error {
	svc := &Service{dev: dev}
	if err := rpc.Register(svc); err != nil {
		return err
	}

	rpc.HandleHTTP()

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != http.ErrServerClosed {
					log.Fatal(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})

	return nil
}

type Service struct {
	dev proto.Screen
}

func (s *Service) Command(name string, _ *EmptyResponse) error {
	switch name {
	case "clear":
		return s.dev.Clear()
	}

	return errors.New("unknown command")
}

func (s *Service) Draw(req *DrawRequest, _ *EmptyResponse) error {
	img, err := png.Decode(bytes.NewBuffer(req.Image))
	if err != nil {
		return err
	}

	return s.dev.Draw(req.X, req.Y, img)
}
