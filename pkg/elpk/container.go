package elpk

import (
	"bytes"
	"encoding/binary"
)

// Parse は展開済みのバイト列をELPKコンテナとして解析します。
// 先頭4バイトがELPKタグでない場合はErrMissingRootTagを返します。
// ヘッダの3つのu32はセマンティクスが未確認のため読み取るだけで
// 検証は行いません。KSEQブロックが1つも無いことはエラーではありません。
func Parse(data []byte) (*Container, error) {
	if len(data) < 4 || !bytes.Equal(data[:4], []byte(RootTag)) {
		return nil, ErrMissingRootTag
	}

	container := &Container{Data: data}

	if len(data) >= 8 {
		copy(container.Version[:], data[4:8])
	}
	if len(data) >= HeaderSize {
		for i := 0; i < 3; i++ {
			container.Header[i] = binary.LittleEndian.Uint32(data[8+i*4:])
		}
	}

	container.Blocks = scanBlocks(data)

	return container, nil
}

// scanBlocks はKSEQタグの非重複な出現をすべて検出します。
// 各ブロックの範囲は [自身のオフセット, 次のオフセット) で、
// 最後のブロックはバッファ終端まで続きます。
func scanBlocks(data []byte) []Block {
	tag := []byte(BlockTag)
	var offsets []int

	pos := 0
	for {
		idx := bytes.Index(data[pos:], tag)
		if idx == -1 {
			break
		}
		offsets = append(offsets, pos+idx)
		pos += idx + len(tag)
	}

	blocks := make([]Block, 0, len(offsets))
	for i, offset := range offsets {
		end := len(data)
		if i+1 < len(offsets) {
			end = offsets[i+1]
		}

		block := Block{Offset: offset, Size: end - offset}

		// タグ直後の2つのu32は診断用に保持する (意味は未確認)
		if offset+12 <= len(data) {
			block.Values[0] = binary.LittleEndian.Uint32(data[offset+4:])
			block.Values[1] = binary.LittleEndian.Uint32(data[offset+8:])
		}

		blocks = append(blocks, block)
	}

	return blocks
}

// EntryTableStop はエントリテーブルの走査を打ち切るオフセットを返します。
// 最初のKSEQブロックの開始位置、ブロックが無い場合はバッファ終端です。
func (c *Container) EntryTableStop() int {
	if len(c.Blocks) > 0 {
		return c.Blocks[0].Offset
	}
	return len(c.Data)
}
