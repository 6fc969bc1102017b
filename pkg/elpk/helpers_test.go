package elpk

import (
	"bytes"
	"compress/gzip"
	"encoding/binary"
	"testing"
	"unicode/utf16"
)

// encodeUTF16LE は文字列をUTF-16LEのバイト列に変換します
func encodeUTF16LE(s string) []byte {
	units := utf16.Encode([]rune(s))
	buf := make([]byte, len(units)*2)
	for i, unit := range units {
		binary.LittleEndian.PutUint16(buf[i*2:], unit)
	}
	return buf
}

// gzipCompress はテスト用にデータをGZIP圧縮します
func gzipCompress(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	writer := gzip.NewWriter(&buf)
	if _, err := writer.Write(data); err != nil {
		t.Fatalf("gzip write failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("gzip close failed: %v", err)
	}
	return buf.Bytes()
}

// containerBuilder はテスト用のELPKコンテナを組み立てます
type containerBuilder struct {
	buf bytes.Buffer
}

// newContainerBuilder はルートヘッダ付きのビルダーを作成します
func newContainerBuilder() *containerBuilder {
	b := &containerBuilder{}
	b.buf.WriteString(RootTag)
	b.buf.Write([]byte{'0', '1', '0', '0'}) // バージョン相当の4バイト
	b.putUint32(0x100, 0x200, 0x300)        // ヘッダの3つのu32 (不透明)
	return b
}

func (b *containerBuilder) putUint32(values ...uint32) *containerBuilder {
	for _, v := range values {
		var tmp [4]byte
		binary.LittleEndian.PutUint32(tmp[:], v)
		b.buf.Write(tmp[:])
	}
	return b
}

// entry は12バイトのエントリレコードを追加します
func (b *containerBuilder) entry(id, offset, length uint32) *containerBuilder {
	return b.putUint32(id, offset, length)
}

// block はKSEQタグとペイロードを追加します
func (b *containerBuilder) block(v1, v2 uint32, payload []byte) *containerBuilder {
	b.buf.WriteString(BlockTag)
	b.putUint32(v1, v2)
	b.buf.Write(payload)
	return b
}

// raw は任意のバイト列を追加します
func (b *containerBuilder) raw(data []byte) *containerBuilder {
	b.buf.Write(data)
	return b
}

func (b *containerBuilder) bytes() []byte {
	return b.buf.Bytes()
}
