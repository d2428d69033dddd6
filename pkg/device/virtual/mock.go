package virtual

import (
	"image"

	"go.uber.org/zap"

	"picopack/pkg/proto"
)

// Mock is a screen that only logs, for dry runs without hardware attached.
func Mock(logger *zap.Logger) proto.Screen {
	return &Mocker{logger}
}

type Mocker struct {
	l *zap.Logger
}

func (m *Mocker) Draw(x int, y int, image image.Image) error {
	m.l.With(
		zap.Int("x", x),
		zap.Int("y", y),
		zap.Int("w", image.Bounds().Dx()),
		zap.Int("h", image.Bounds().Dy()),
	).Info("draw")
	return nil
}

func (m *Mocker) Clear() error {
	m.l.Info("clear")
	return nil
}

func (m *Mocker) Close() error {
	m.l.Info("close")
	return nil
}
