// Package imgutil は入力画像の再圧縮を担当します。
// インライン添付の上限を超える画像を送信前に小さくするために使います。
package imgutil

import (
	"bytes"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
)

// CompressToJPEG は画像データ（PNG, GIF, JPEG等）を指定品質の JPEG に
// 再圧縮します。quality は jpeg パッケージの有効範囲 [1, 100] に丸めます。
func CompressToJPEG(data []byte, quality int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	if quality < 1 {
		quality = 1
	} else if quality > 100 {
		quality = 100
	}

	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
