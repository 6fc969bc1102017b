// Package models は抽出コマンドで使用するデータモデルを定義します
package models

import "github.com/shiroemons/go-kurohyou/pkg/elpk"

// TimedCue はカットシーン字幕の1行を表します。
// StartFrameとEndFrameが共に-1の行は台詞ではなく間(ポーズ)を表します。
type TimedCue struct {
	LineIndex  int    // 元ファイルの行番号 (1始まり)
	StartFrame int    // 開始フレーム
	EndFrame   int    // 終了フレーム
	Text       string // 表示テキスト (カンマを含むことがある)
	IsPause    bool
}

// Duration は表示フレーム数を返します。間の場合は0です。
func (c *TimedCue) Duration() int {
	if c.IsPause {
		return 0
	}
	return c.EndFrame - c.StartFrame
}

// CueStatistics は字幕リスト全体の集計値を保持します。
// 秒への換算は固定の30fpsで行います。
type CueStatistics struct {
	TotalLines           int
	DialogueLines        int
	PauseLines           int
	TotalChars           int
	AvgChars             float64
	TotalDurationFrames  int
	AvgDurationFrames    float64
	TotalDurationSeconds float64
	AvgDurationSeconds   float64
}

// PackResult は1つの.packファイルの解析結果を表します。
// 解析後は不変のスナップショットとして扱ってください。
type PackResult struct {
	InputFile        string
	CompressedSize   int
	DecompressedSize int
	Version          [4]byte
	Header           [3]uint32
	Blocks           []elpk.Block
	Entries          []elpk.EntryRecord
	Texts            []elpk.RecoveredText
}

// CueResult は1つの字幕ファイルの解析結果を表します
type CueResult struct {
	InputFile string
	Cues      []*TimedCue
	Stats     CueStatistics
}
