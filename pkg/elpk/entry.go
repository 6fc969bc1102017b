package elpk

import "encoding/binary"

// エントリテーブルのレコード構造
const (
	// EntryRecordSize は1レコードのバイト数 (u32 LE x 3)
	EntryRecordSize = 12

	// DefaultLengthCeiling はレコード長の妥当性上限のデフォルト値
	DefaultLengthCeiling = 10000

	// DefaultMaxRecords は読み取るレコード数の安全上限のデフォルト値。
	// テーブル長がどこにも記録されていないため、アラインメントずれの
	// 暴走を防ぐ目的で設けています。
	DefaultMaxRecords = 50
)

// EntryTableOptions はエントリテーブル読み取りの設定です
type EntryTableOptions struct {
	LengthCeiling uint32 // この値以上のLengthを持つレコードは棄却
	MaxRecords    int    // 読み取るレコード数の上限
}

// DefaultEntryTableOptions はデフォルト設定を返します
func DefaultEntryTableOptions() EntryTableOptions {
	return EntryTableOptions{
		LengthCeiling: DefaultLengthCeiling,
		MaxRecords:    DefaultMaxRecords,
	}
}

// ReadEntryTable はルートヘッダ直後からエントリテーブルを読み取ります。
// テーブルの正確な長さは別途記録されていないため、内容の妥当性から
// 推定します: 停止オフセット (最初のKSEQブロック) に達するか、
// 妥当性を欠くレコードに遭遇するか、上限数に達した時点で終了します。
// 妥当性を欠くレコードは走査を終えるだけでエラーではありません。
func ReadEntryTable(c *Container, opts EntryTableOptions) []EntryRecord {
	return readEntryTable(c.Data, HeaderSize, c.EntryTableStop(), opts)
}

func readEntryTable(data []byte, start, stop int, opts EntryTableOptions) []EntryRecord {
	var records []EntryRecord

	pos := start
	for pos+EntryRecordSize <= stop {
		if opts.MaxRecords > 0 && len(records) >= opts.MaxRecords {
			break
		}

		record := EntryRecord{
			ID:     binary.LittleEndian.Uint32(data[pos:]),
			Offset: binary.LittleEndian.Uint32(data[pos+4:]),
			Length: binary.LittleEndian.Uint32(data[pos+8:]),
		}

		if !plausible(record, len(data), opts.LengthCeiling) {
			break
		}

		records = append(records, record)
		pos += EntryRecordSize
	}

	return records
}

// plausible はレコードが構造的に妥当か判定します
func plausible(r EntryRecord, containerLen int, ceiling uint32) bool {
	if r.Offset == 0 || int(r.Offset) >= containerLen {
		return false
	}
	if r.Length == 0 || r.Length >= ceiling {
		return false
	}
	return true
}
