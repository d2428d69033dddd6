package picoscreen

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

func (p *Pico) sendWindow(x0, y0, x1, y1 int) error {
	return p.sendBytes([]byte{byte(x0), byte(y0), byte(x1), byte(y1)})
}

func (p *Pico) sendBytes(bytes []byte) error {
	var sent int
	var cost time.Duration

	start := time.Now()
	if n, err := p.port.Write(bytes); err != nil {
		return err
	} else {
		sent = n
		cost = time.Since(start)
	}

	ext := ""
	if len(bytes) <= 16 {
		ext = fmt.Sprintf("%x", bytes)
	}

	p.logger.With(
		zap.Int("sent", sent),
		zap.String("cost", cost.String()),
		zap.String("data", ext),
	).Debug("transfer")

	return nil
}
