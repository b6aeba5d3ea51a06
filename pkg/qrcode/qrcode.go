// Package qrcode 负责身份二维码的生成（用户端）和识别（回收机端）。
package qrcode

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/makiuchi-d/gozxing"
	zxqr "github.com/makiuchi-d/gozxing/qrcode"
	skip2 "github.com/skip2/go-qrcode"
	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// 超过这个边长的图片先缩小再识别
const maxDecodeEdge = 1600

var (
	ErrUnsupportedImage = errors.New("unsupported image")
	ErrNoCode           = errors.New("no qr code found")
)

// Encode 生成 PNG，纠错等级 H
func Encode(content string, size int) ([]byte, error) {
	if content == "" {
		return nil, errors.New("empty qr content")
	}
	return skip2.Encode(content, skip2.High, size)
}

// Decode 从上传的图片中读出二维码文本
func Decode(r io.Reader) (string, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}
	return DecodeImage(img)
}

func DecodeImage(img image.Image) (string, error) {
	img = shrink(img)
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}

	hints := map[gozxing.DecodeHintType]interface{}{
		gozxing.DecodeHintType_TRY_HARDER: true,
	}
	result, err := zxqr.NewQRCodeReader().Decode(bmp, hints)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoCode, err)
	}
	return result.GetText(), nil
}

func shrink(img image.Image) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	edge := max(w, h)
	if edge <= maxDecodeEdge {
		return img
	}
	nw, nh := w*maxDecodeEdge/edge, h*maxDecodeEdge/edge
	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
