package elpk

import (
	"bytes"
	"encoding/binary"
	"sort"
	"strings"
	"unicode"

	textunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// テキストの正確なフレーミング規則 (長さプレフィックスかnull終端か
// 固定ストライドか) は未確認のため、単一の解釈に依存せず
// 独立した複数のヒューリスティックを併用して結果をマージします。

// ScanOptions はテキスト復元のヒューリスティックパラメータです
type ScanOptions struct {
	// WindowLengths はスライディングウィンドウ方式で試す
	// 候補ウィンドウ長 (バイト数、昇順)
	WindowLengths []int

	// MinRunBytes はnull終端方式で採用する最小バイト長 (この値超で採用)
	MinRunBytes int

	// MinASCIIRun は印字可能ASCII連続の最小バイト長
	MinASCIIRun int

	// ASCIIFallback は印字可能ASCII連続の回収を行うかどうか
	ASCIIFallback bool
}

// DefaultScanOptions はデフォルトのヒューリスティックパラメータを返します
func DefaultScanOptions() ScanOptions {
	return ScanOptions{
		WindowLengths: []int{20, 40, 60, 80, 100, 150, 200},
		MinRunBytes:   4,
		MinASCIIRun:   3,
		ASCIIFallback: true,
	}
}

// utf16LE はテキスト復元に使うUTF-16リトルエンディアンのエンコーディング
var utf16LE = textunicode.UTF16(textunicode.LittleEndian, textunicode.IgnoreBOM)

// RecoverTexts はバイト列から埋め込みテキストを復元します。
// スライディングウィンドウ方式とnull終端方式を独立に実行し、
// (有効な場合は) ASCII回収も加えた上で、ソースオフセット昇順に
// 並べてテキストの完全一致で重複排除します (先勝ち)。
// 同じバッファに対して何度実行しても同一の結果列を返します。
func RecoverTexts(data []byte, opts ScanOptions) []RecoveredText {
	groups := [][]RecoveredText{
		scanSlidingWindows(data, opts),
		scanNullDelimited(data, opts),
	}
	if opts.ASCIIFallback {
		groups = append(groups, scanASCIIRuns(data, opts.MinASCIIRun))
	}
	return mergeAndDedup(groups)
}

// scanSlidingWindows は2バイト刻みで各オフセットから候補ウィンドウ長を
// 昇順に試し、最初に日本語文字を含んだウィンドウを採用します。
// 採用したウィンドウの分だけ走査位置を進めることで、同じ論理文字列の
// 部分文字列を重複検出しないようにしています。
func scanSlidingWindows(data []byte, opts ScanOptions) []RecoveredText {
	var results []RecoveredText

	i := 0
	for i < len(data)-3 {
		matched := false
		for _, length := range opts.WindowLengths {
			if i+length > len(data) {
				continue
			}

			text, units, ok := decodeScriptWindow(data[i : i+length])
			if !ok {
				continue
			}

			results = append(results, RecoveredText{
				SourceOffset: i,
				RawUnits:     units,
				Text:         text,
				AcceptedBy:   AcceptedByScriptRange,
			})
			i += length
			matched = true
			break
		}
		if !matched {
			i += 2
		}
	}

	return results
}

// scanNullDelimited は16ビット符号単位の終端 (00 00) の出現位置を列挙し、
// 連続する2つの終端の間にある極大な区間を候補として復元します
func scanNullDelimited(data []byte, opts ScanOptions) []RecoveredText {
	terminator := []byte{0x00, 0x00}

	var positions []int
	start := 0
	for {
		idx := bytes.Index(data[start:], terminator)
		if idx == -1 {
			break
		}
		positions = append(positions, start+idx)
		start += idx + 2
	}

	var results []RecoveredText
	for i := 0; i+1 < len(positions); i++ {
		runStart := positions[i] + 2
		runEnd := positions[i+1]
		if runEnd-runStart <= opts.MinRunBytes {
			continue
		}

		run := data[runStart:runEnd]
		if len(run)%2 != 0 {
			run = run[:len(run)-1]
		}

		text, units, ok := decodeScriptWindow(run)
		if !ok {
			continue
		}

		results = append(results, RecoveredText{
			SourceOffset: runStart,
			RawUnits:     units,
			Text:         text,
			AcceptedBy:   AcceptedByScriptRange,
		})
	}

	return results
}

// scanASCIIRuns は印字可能ASCII (0x20〜0x7E) の極大な連続を回収します。
// コマンド名やファイル参照などのスクリプト付随文字列がここで拾われます。
func scanASCIIRuns(data []byte, minRun int) []RecoveredText {
	var results []RecoveredText

	runStart := -1
	for i := 0; i <= len(data); i++ {
		printable := i < len(data) && data[i] >= 0x20 && data[i] <= 0x7e
		if printable {
			if runStart == -1 {
				runStart = i
			}
			continue
		}
		if runStart != -1 && i-runStart >= minRun {
			results = append(results, RecoveredText{
				SourceOffset: runStart,
				Text:         string(data[runStart:i]),
				AcceptedBy:   AcceptedByASCIIFallback,
			})
		}
		runStart = -1
	}

	return results
}

// decodeScriptWindow はウィンドウをUTF-16LEとして解釈し、
// 日本語文字を含む場合に整形済みテキストを返します。
// 非対サロゲートなどで有効に解釈できないウィンドウは不採用と
// するだけで、エラーにはしません。
func decodeScriptWindow(window []byte) (string, []uint16, bool) {
	decoded, _, err := transform.Bytes(utf16LE.NewDecoder(), window)
	if err != nil {
		return "", nil, false
	}

	text := string(decoded)

	// 非対サロゲートは置換文字に変換されるため、含まれていたら
	// 有効なUTF-16LE解釈ではないと判断する
	if strings.ContainsRune(text, '�') {
		return "", nil, false
	}

	if !containsScriptRune(text) {
		return "", nil, false
	}

	trimmed := trimScriptText(text)
	if trimmed == "" {
		return "", nil, false
	}

	units := make([]uint16, 0, len(window)/2)
	for i := 0; i+1 < len(window); i += 2 {
		units = append(units, binary.LittleEndian.Uint16(window[i:]))
	}

	return trimmed, units, true
}

// isScriptRune はひらがな・カタカナ・CJK統合漢字のいずれかか判定します
func isScriptRune(r rune) bool {
	switch {
	case r >= 0x3040 && r <= 0x309F: // ひらがな
		return true
	case r >= 0x30A0 && r <= 0x30FF: // カタカナ
		return true
	case r >= 0x4E00 && r <= 0x9FAF: // CJK統合漢字
		return true
	}
	return false
}

// containsScriptRune は日本語文字を1つ以上含むか判定します
func containsScriptRune(s string) bool {
	for _, r := range s {
		if isScriptRune(r) {
			return true
		}
	}
	return false
}

// trimScriptText は印字可能でも日本語文字でもない制御系の文字を
// 取り除き、前後の空白を落とします
func trimScriptText(s string) string {
	var builder strings.Builder
	for _, r := range s {
		if unicode.IsPrint(r) || isScriptRune(r) {
			builder.WriteRune(r)
		}
	}
	return strings.TrimSpace(builder.String())
}

// mergeAndDedup は各方式の結果をソースオフセット昇順に統合し、
// テキストの完全一致で重複排除します (先に出現したものが勝ち)
func mergeAndDedup(groups [][]RecoveredText) []RecoveredText {
	var all []RecoveredText
	for _, group := range groups {
		all = append(all, group...)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].SourceOffset < all[j].SourceOffset
	})

	seen := make(map[string]struct{}, len(all))
	results := make([]RecoveredText, 0, len(all))
	for _, text := range all {
		if text.Text == "" {
			continue
		}
		if _, ok := seen[text.Text]; ok {
			continue
		}
		seen[text.Text] = struct{}{}
		results = append(results, text)
	}

	return results
}
