// Package elpk は「クロヒョウ 龍が如く新章」(PSP) のスクリプトコンテナ
// (.packファイル) を解析するためのパッケージです。
//
// .packファイルはGZIP圧縮された外側のレイヤーと、ELPKタグで始まる内側の
// コンテナで構成されます。コンテナ内にはKSEQタグで区切られた台詞ブロックと、
// 識別子とバイト範囲を対応付ける固定長エントリテーブルが含まれます。
// テキストはUTF-16LEで埋め込まれていますが、正確なフレーミング規則
// (長さプレフィックスかnull終端か) は未確認のため、複数のヒューリスティック
// を併用して復元します。
//
// 基本的な使い方:
//
//	raw, _ := os.ReadFile("tuto_001.pack")
//	data, err := elpk.Decompress(raw)
//	if err != nil {
//	    // GZIPでない、または破損している
//	}
//	container, err := elpk.Parse(data)
//	if err != nil {
//	    // ELPKコンテナではない
//	}
//	entries := elpk.ReadEntryTable(container, elpk.DefaultEntryTableOptions())
//	texts := elpk.RecoverTexts(data, elpk.DefaultScanOptions())
package elpk

// コンテナ形式の識別タグ
const (
	// RootTag は展開後のコンテナ先頭を示す4バイトのASCIIタグ
	RootTag = "ELPK"

	// BlockTag は台詞ブロックの開始を示す4バイトのASCIIタグ
	BlockTag = "KSEQ"

	// HeaderSize はルートヘッダのサイズ
	// (8バイトのマジック/バージョン + 3つのリトルエンディアンu32)
	HeaderSize = 20
)

// AcceptMethod は復元テキストがどの判定で採用されたかを表します
type AcceptMethod int

const (
	// AcceptedByScriptRange はひらがな・カタカナ・CJK統合漢字の
	// いずれかを含むと判定されたことを表します
	AcceptedByScriptRange AcceptMethod = iota

	// AcceptedByASCIIFallback は印字可能ASCIIの連続として
	// 回収されたことを表します
	AcceptedByASCIIFallback
)

// String は判定方法の文字列表現を返します
func (m AcceptMethod) String() string {
	switch m {
	case AcceptedByScriptRange:
		return "script-range"
	case AcceptedByASCIIFallback:
		return "ascii-fallback"
	default:
		return "unknown"
	}
}

// Block はKSEQタグで始まる台詞ブロックを表します
type Block struct {
	Offset int       // コンテナ内のタグ開始オフセット
	Size   int       // 次のタグ (または終端) までのバイト数
	Values [2]uint32 // タグ直後の2つのu32 (意味は未確認、診断用)
}

// End はブロックの終端オフセットを返します
func (b Block) End() int {
	return b.Offset + b.Size
}

// EntryRecord はエントリテーブルの1行を表します。
// IDは不透明なハッシュ値として扱います。
type EntryRecord struct {
	ID     uint32
	Offset uint32
	Length uint32
}

// RecoveredText はバイナリから復元した1つのテキストを表します
type RecoveredText struct {
	SourceOffset int          // 元データ内の開始オフセット
	RawUnits     []uint16     // リトルエンディアン解釈した16ビット符号単位列
	Text         string       // 整形後のテキスト
	AcceptedBy   AcceptMethod // 採用判定の種別
}

// Container は解析済みのELPKコンテナを表します。
// Parseの呼び出し後は不変のスナップショットとして扱ってください。
type Container struct {
	Data    []byte    // 展開済みの全バイト列
	Version [4]byte   // マジック直後の4バイト (意味は未確認)
	Header  [3]uint32 // ヘッダの3つのu32 (検証しない、診断用のみ)
	Blocks  []Block   // 出現順 (オフセット昇順) の台詞ブロック
}
