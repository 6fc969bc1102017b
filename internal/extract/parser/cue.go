// Package parser はカットシーン字幕データの解析を行います
package parser

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shiroemons/go-kurohyou/internal/extract/models"
)

// FramesPerSecond はゲーム本編の固定フレームレート
const FramesPerSecond = 30.0

// CueParser はフレーム番号付きの字幕リストを解析します。
// 各行は最初の2つのカンマで (開始フレーム, 終了フレーム, テキスト) に
// 分割され、テキスト部分に含まれるカンマはそのまま保持されます。
type CueParser struct{}

// NewCueParser は新しいCueParserを作成します
func NewCueParser() *CueParser {
	return &CueParser{}
}

// ParseCues は字幕データを1行ずつ解析します。
// 3分割できない行やフレーム番号が整数でない行、継続時間が負になる行は
// 静かに読み飛ばされます (エラーにはせず、取得行数の減少としてのみ現れます)。
// 開始・終了フレームが共に-1の行は間(ポーズ)として扱います。
func (p *CueParser) ParseCues(data string) ([]*models.TimedCue, error) {
	var cues []*models.TimedCue

	scanner := bufio.NewScanner(strings.NewReader(data))
	lineIndex := 0
	for scanner.Scan() {
		lineIndex++
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}

		parts := strings.SplitN(line, ",", 3)
		if len(parts) < 3 {
			continue
		}

		startFrame, err := strconv.Atoi(parts[0])
		if err != nil {
			continue
		}
		endFrame, err := strconv.Atoi(parts[1])
		if err != nil {
			continue
		}

		cue := &models.TimedCue{
			LineIndex:  lineIndex,
			StartFrame: startFrame,
			EndFrame:   endFrame,
			Text:       parts[2],
			IsPause:    startFrame == -1 && endFrame == -1,
		}

		// 継続時間が負になる行は入力の破損とみなして棄却する
		if !cue.IsPause && cue.Duration() < 0 {
			continue
		}

		cues = append(cues, cue)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanFailure, err)
	}

	return cues, nil
}

// ComputeStatistics は字幕リスト全体の集計値を1パスで計算します。
// 台詞行が0件の場合、平均値はエラーではなく0になります。
func ComputeStatistics(cues []*models.TimedCue) models.CueStatistics {
	stats := models.CueStatistics{TotalLines: len(cues)}

	for _, cue := range cues {
		if cue.IsPause {
			stats.PauseLines++
			continue
		}
		stats.DialogueLines++
		stats.TotalChars += utf8.RuneCountInString(cue.Text)
		stats.TotalDurationFrames += cue.Duration()
	}

	if stats.DialogueLines > 0 {
		stats.AvgChars = float64(stats.TotalChars) / float64(stats.DialogueLines)
		stats.AvgDurationFrames = float64(stats.TotalDurationFrames) / float64(stats.DialogueLines)
	}
	stats.TotalDurationSeconds = FramesToSeconds(float64(stats.TotalDurationFrames))
	stats.AvgDurationSeconds = FramesToSeconds(stats.AvgDurationFrames)

	return stats
}

// FramesToSeconds はフレーム数を秒に換算します
func FramesToSeconds(frames float64) float64 {
	if frames <= 0 {
		return 0
	}
	return frames / FramesPerSecond
}

// FramesToMilliseconds はフレーム数をミリ秒に換算します
func FramesToMilliseconds(frames float64) float64 {
	return FramesToSeconds(frames) * 1000
}

// FormatDuration はフレーム数を読みやすい文字列に整形します
func FormatDuration(frames int) string {
	if frames <= 0 {
		return "0 frames"
	}

	seconds := FramesToSeconds(float64(frames))
	if seconds < 1 {
		return fmt.Sprintf("%d frames (%.0fms)", frames, FramesToMilliseconds(float64(frames)))
	}
	return fmt.Sprintf("%d frames (%.2fs)", frames, seconds)
}
