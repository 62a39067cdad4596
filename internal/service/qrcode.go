package service

import (
	"errors"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(url string) ([]byte, error)
}

type DefaultQRGenerator struct {
	Size int
}

func (g DefaultQRGenerator) Generate(url string) ([]byte, error) {
	if url == "" {
		return nil, errors.New("store has no Uber Eats URL")
	}
	size := g.Size
	if size == 0 {
		size = 256
	}
	return qrcode.Encode(url, qrcode.Medium, size)
}

var _ QRGenerator = DefaultQRGenerator{}
