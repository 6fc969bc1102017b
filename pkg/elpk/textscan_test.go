package elpk

import (
	"reflect"
	"testing"
)

// noASCIIOptions はASCII回収を無効にしたオプションを返します
func noASCIIOptions() ScanOptions {
	opts := DefaultScanOptions()
	opts.ASCIIFallback = false
	return opts
}

func TestRecoverTexts_SlidingWindow(t *testing.T) {
	// 10文字 = 20バイトで候補ウィンドウ長と一致させる
	source := "マジでヤル気なのかよ"
	data := encodeUTF16LE(source)

	texts := RecoverTexts(data, noASCIIOptions())

	if len(texts) != 1 {
		t.Fatalf("Expected 1 text, got %d", len(texts))
	}

	got := texts[0]
	if got.Text != source {
		t.Errorf("Expected %q, got %q", source, got.Text)
	}
	if got.SourceOffset != 0 {
		t.Errorf("Expected source offset 0, got %d", got.SourceOffset)
	}
	if got.AcceptedBy != AcceptedByScriptRange {
		t.Errorf("Expected script-range acceptance, got %v", got.AcceptedBy)
	}
	if len(got.RawUnits) != 10 || got.RawUnits[0] != 0x30DE {
		t.Errorf("Unexpected raw units: %v", got.RawUnits)
	}
}

func TestRecoverTexts_SkipAhead(t *testing.T) {
	// 採用したウィンドウの直後から次の文字列が検出される
	first := "マジでヤル気なのかよ"
	second := "ありがとうございます"
	data := append(encodeUTF16LE(first), encodeUTF16LE(second)...)

	texts := RecoverTexts(data, noASCIIOptions())

	if len(texts) != 2 {
		t.Fatalf("Expected 2 texts, got %d", len(texts))
	}
	if texts[0].Text != first || texts[0].SourceOffset != 0 {
		t.Errorf("Unexpected first text: %+v", texts[0])
	}
	if texts[1].Text != second || texts[1].SourceOffset != 20 {
		t.Errorf("Unexpected second text: %+v", texts[1])
	}
}

func TestRecoverTexts_NullDelimited(t *testing.T) {
	// ウィンドウ長より短いデータはnull終端方式でのみ回収される
	var data []byte
	data = append(data, 0x00, 0x00)
	data = append(data, encodeUTF16LE("こんにちは")...)
	data = append(data, 0x00, 0x00)

	texts := RecoverTexts(data, noASCIIOptions())

	if len(texts) != 1 {
		t.Fatalf("Expected 1 text, got %d", len(texts))
	}
	if texts[0].Text != "こんにちは" {
		t.Errorf("Expected こんにちは, got %q", texts[0].Text)
	}
	if texts[0].SourceOffset != 2 {
		t.Errorf("Expected source offset 2, got %d", texts[0].SourceOffset)
	}
}

func TestRecoverTexts_NullDelimitedMinRun(t *testing.T) {
	// 4バイト以下の区間は短すぎるため棄却される
	var data []byte
	data = append(data, 0x00, 0x00)
	data = append(data, encodeUTF16LE("はい")...)
	data = append(data, 0x00, 0x00)

	texts := RecoverTexts(data, noASCIIOptions())

	if len(texts) != 0 {
		t.Fatalf("Expected no texts for short run, got %d", len(texts))
	}
}

func TestRecoverTexts_Dedup(t *testing.T) {
	// 同一テキストはソースオフセット昇順の先勝ちで1件になる
	var data []byte
	data = append(data, 0x00, 0x00)
	data = append(data, encodeUTF16LE("うそだ")...)
	data = append(data, 0x00, 0x00)
	data = append(data, encodeUTF16LE("うそだ")...)
	data = append(data, 0x00, 0x00)

	texts := RecoverTexts(data, noASCIIOptions())

	if len(texts) != 1 {
		t.Fatalf("Expected 1 text after dedup, got %d", len(texts))
	}
	if texts[0].Text != "うそだ" || texts[0].SourceOffset != 2 {
		t.Errorf("Unexpected dedup winner: %+v", texts[0])
	}
}

func TestRecoverTexts_Idempotent(t *testing.T) {
	var data []byte
	data = append(data, encodeUTF16LE("マジでヤル気なのかよ")...)
	data = append(data, 0x00, 0x00)
	data = append(data, encodeUTF16LE("こんにちは")...)
	data = append(data, 0x00, 0x00)
	data = append(data, []byte("SCENE_01")...)
	data = append(data, 0x00)

	first := RecoverTexts(data, DefaultScanOptions())
	second := RecoverTexts(data, DefaultScanOptions())

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Expected identical results across runs:\n%+v\n%+v", first, second)
	}
}

func TestRecoverTexts_ScriptRangeInvariant(t *testing.T) {
	var data []byte
	data = append(data, encodeUTF16LE("マジでヤル気なのかよ")...)
	data = append(data, 0x00, 0x00)
	data = append(data, []byte("COMMAND_01")...)
	data = append(data, 0x00)

	texts := RecoverTexts(data, DefaultScanOptions())

	for _, text := range texts {
		if text.Text == "" {
			t.Errorf("Empty text accepted: %+v", text)
		}
		if text.AcceptedBy == AcceptedByScriptRange && !containsScriptRune(text.Text) {
			t.Errorf("Script-range text without Japanese scalar: %q", text.Text)
		}
	}
}

func TestRecoverTexts_ASCIIFallback(t *testing.T) {
	data := []byte("COMMAND_01\x00\x01ok\x00ruby")

	texts := RecoverTexts(data, DefaultScanOptions())

	if len(texts) != 2 {
		t.Fatalf("Expected 2 texts, got %d: %+v", len(texts), texts)
	}

	if texts[0].Text != "COMMAND_01" || texts[0].SourceOffset != 0 {
		t.Errorf("Unexpected first text: %+v", texts[0])
	}
	if texts[1].Text != "ruby" || texts[1].SourceOffset != 15 {
		t.Errorf("Unexpected second text: %+v", texts[1])
	}
	for _, text := range texts {
		if text.AcceptedBy != AcceptedByASCIIFallback {
			t.Errorf("Expected ascii-fallback acceptance: %+v", text)
		}
	}
}

func TestDecodeScriptWindow_KnownKanji(t *testing.T) {
	// 8D 9F をリトルエンディアン解釈すると U+9F8D (龍)
	text, units, ok := decodeScriptWindow([]byte{0x8d, 0x9f})
	if !ok {
		t.Fatal("Expected window to decode")
	}
	if text != "龍" {
		t.Errorf("Expected 龍, got %q", text)
	}
	if len(units) != 1 || units[0] != 0x9f8d {
		t.Errorf("Unexpected units: %v", units)
	}
}

func TestDecodeScriptWindow_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		window []byte
	}{
		{
			name:   "日本語文字を含まない場合",
			window: encodeUTF16LE("hello"),
		},
		{
			name:   "非対サロゲートを含む場合",
			window: []byte{0x42, 0x30, 0x00, 0xd8}, // あ + 孤立した上位サロゲート
		},
		{
			name:   "制御文字のみの場合",
			window: []byte{0x01, 0x00, 0x02, 0x00},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, ok := decodeScriptWindow(tt.window); ok {
				t.Error("Expected window to be rejected")
			}
		})
	}
}
