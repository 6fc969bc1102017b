package elpk

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
)

// gzipMagic はGZIPファイルの先頭2バイト
var gzipMagic = []byte{0x1f, 0x8b}

// IsCompressed はデータがGZIPマジックで始まるか確認します
func IsCompressed(data []byte) bool {
	return len(data) >= 2 && bytes.Equal(data[:2], gzipMagic)
}

// Decompress はGZIP圧縮された.packファイルの全体を展開します。
// 展開は全か無かで行われ、ストリームが破損している場合は
// 部分的な結果を返さずにErrDecompressionFailedを返します。
func Decompress(data []byte) ([]byte, error) {
	if !IsCompressed(data) {
		return nil, ErrNotCompressed
	}

	reader, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecompressionFailed, err)
	}
	defer reader.Close()

	decompressed, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecompressionFailed, err)
	}

	return decompressed, nil
}
