package remote

import (
	"context"
	"image"
	"net"
	"net/http"
	"net/rpc"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"framefx/pkg/proto"
)

var ErrUnknownCommand = errors.New("unknown command")

// Handler exposes dev over net/rpc on the default rpc path.
func Handler(dev proto.Control) (http.Handler, error) {
	srv := rpc.NewServer()
	if err := srv.RegisterName(serviceName, &Service{dev: dev}); err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.Handle(rpc.DefaultRPCPath, srv)
	return mux, nil
}

// Proxy serves dev on srv for the lifetime of the fx application.
func Proxy(dev proto.Control, srv *http.Server, logger *zap.Logger, lifecycle fx.Lifecycle) error {
	h, err := Handler(dev)
	if err != nil {
		return err
	}
	srv.Handler = h

	log := logger.With(zap.String("addr", srv.Addr))

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			go func() {
				if err := srv.Serve(ln); err != http.ErrServerClosed {
					log.With(zap.Error(err)).Error("relay stopped")
				}
			}()
			log.Info("relay listening")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})

	return nil
}

type Service struct {
	dev proto.Control
}

func (s *Service) Command(name string, _ *EmptyResponse) error {
	switch name {
	case "startup":
		return s.dev.Startup()
	case "shutdown":
		return s.dev.Shutdown()
	case "restart":
		return s.dev.Restart()
	}

	return errors.Wrap(ErrUnknownCommand, name)
}

func (s *Service) SetLight(light uint8, _ *EmptyResponse) error {
	return s.dev.SetLight(light)
}

func (s *Service) SetMirror(mirror bool, _ *EmptyResponse) error {
	return s.dev.SetMirror(mirror)
}

func (s *Service) SetRotate(req SetRotateRequest, _ *EmptyResponse) error {
	return s.dev.SetRotate(req.Landscape, req.Invert)
}

func (s *Service) DrawBitmap(req *DrawBitmapRequest, _ *EmptyResponse) error {
	if req.Width < 0 || req.Height < 0 || len(req.Pix) != 4*req.Width*req.Height {
		return errors.Errorf("bitmap payload of %d bytes does not match %dx%d", len(req.Pix), req.Width, req.Height)
	}

	img := &image.NRGBA{
		Pix:    req.Pix,
		Stride: 4 * req.Width,
		Rect:   image.Rect(0, 0, req.Width, req.Height),
	}

	return s.dev.DrawBitmap(req.PosX, req.PosY, img)
}
