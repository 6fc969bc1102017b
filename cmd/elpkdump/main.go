// elpkdump は.packコンテナを直接調査するための低レベルツールです。
// ヘッダのhexダンプ、エントリテーブルの一覧、復元テキストの表示を行います。
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/shiroemons/go-kurohyou/pkg/elpk"
)

var (
	listFlag  = flag.Bool("l", false, "list entry table records")
	textFlag  = flag.Bool("x", false, "dump recovered texts")
	debugFlag = flag.Bool("d", false, "debug mode (show more info)")
)

func main() {
	flag.Parse()

	// 引数チェック
	args := flag.Args()
	if len(args) < 1 {
		fmt.Println("使用方法: elpkdump [オプション] <packファイル>")
		fmt.Println("オプション:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	filename := args[0]

	raw, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "エラー: %v\n", err)
		os.Exit(1)
	}

	data, err := elpk.Decompress(raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "エラー: %v\n", err)
		os.Exit(1)
	}

	container, err := elpk.Parse(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "エラー: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("ファイル: %s\n", filename)
	fmt.Printf("圧縮サイズ: %s / 展開サイズ: %s\n",
		humanize.Bytes(uint64(len(raw))), humanize.Bytes(uint64(len(data))))
	fmt.Printf("KSEQブロック数: %d\n", len(container.Blocks))

	// デバッグモードの場合、ヘッダ情報を表示
	if *debugFlag {
		fmt.Printf("バージョン: %s\n", string(container.Version[:]))
		fmt.Printf("ヘッダ値 (意味未確認): %d %d %d\n",
			container.Header[0], container.Header[1], container.Header[2])
		hexdump(data, 0, 32)
		for i, block := range container.Blocks {
			fmt.Printf("ブロック #%d: オフセット 0x%06X、%s、値 %d %d\n",
				i+1, block.Offset, humanize.Bytes(uint64(block.Size)),
				block.Values[0], block.Values[1])
		}
	}

	// エントリテーブルを表示する
	if *listFlag {
		entries := elpk.ReadEntryTable(container, elpk.DefaultEntryTableOptions())
		fmt.Printf("\nエントリテーブル: %d件\n", len(entries))
		for i, entry := range entries {
			fmt.Printf("[%2d] ID: %08X | オフセット: %6d | 長さ: %5d\n",
				i, entry.ID, entry.Offset, entry.Length)
		}
	}

	// 復元テキストを表示する
	if *textFlag {
		texts := elpk.RecoverTexts(data, elpk.DefaultScanOptions())
		fmt.Printf("\n復元テキスト: %s件\n", humanize.Comma(int64(len(texts))))
		for _, text := range texts {
			fmt.Printf("%06X [%s] %s\n", text.SourceOffset, text.AcceptedBy, text.Text)
		}
	}
}

// hexdump は範囲指定でバイト列を16進表示します
func hexdump(data []byte, offset, length int) {
	end := offset + length
	if end > len(data) {
		end = len(data)
	}

	fmt.Println("オフセット  00 01 02 03 04 05 06 07 08 09 0A 0B 0C 0D 0E 0F  ASCII")
	for i := offset; i < end; i += 16 {
		fmt.Printf("%06X      ", i)

		for j := 0; j < 16; j++ {
			if i+j < end {
				fmt.Printf("%02X ", data[i+j])
			} else {
				fmt.Print("   ")
			}
		}

		fmt.Print(" ")
		for j := 0; j < 16 && i+j < end; j++ {
			b := data[i+j]
			if b >= 0x20 && b <= 0x7e {
				fmt.Printf("%c", b)
			} else {
				fmt.Print(".")
			}
		}
		fmt.Println()
	}
}
