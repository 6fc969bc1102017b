// Package analyzer は.packファイルの解析パイプラインを実行します
package analyzer

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/shiroemons/go-kurohyou/internal/extract/config"
	"github.com/shiroemons/go-kurohyou/internal/extract/fileutil"
	"github.com/shiroemons/go-kurohyou/internal/extract/interfaces"
	"github.com/shiroemons/go-kurohyou/internal/extract/models"
	"github.com/shiroemons/go-kurohyou/pkg/elpk"
)

// Analyzer は.packファイルを読み込み、展開・構造解析・テキスト復元を
// この順で実行します。各段は前段の出力に依存するため並列化は行いません。
// 内部に状態を持たないため、呼び出し側がファイルごとに並列実行できます。
type Analyzer struct {
	logger    *config.DebugLogger
	fs        interfaces.FileSystem
	entryOpts elpk.EntryTableOptions
	scanOpts  elpk.ScanOptions
}

// Options はAnalyzerの設定オプション
type Options struct {
	FileSystem interfaces.FileSystem
	EntryOpts  *elpk.EntryTableOptions
	ScanOpts   *elpk.ScanOptions
}

// New は新しいAnalyzerを作成します
func New(logger *config.DebugLogger) *Analyzer {
	return NewWithOptions(logger, Options{})
}

// NewWithOptions は新しいAnalyzerをオプション付きで作成します
func NewWithOptions(logger *config.DebugLogger, opts Options) *Analyzer {
	fs := opts.FileSystem
	if fs == nil {
		fs = fileutil.NewOSFileSystem()
	}

	entryOpts := elpk.DefaultEntryTableOptions()
	if opts.EntryOpts != nil {
		entryOpts = *opts.EntryOpts
	}

	scanOpts := elpk.DefaultScanOptions()
	if opts.ScanOpts != nil {
		scanOpts = *opts.ScanOpts
	}

	return &Analyzer{
		logger:    logger,
		fs:        fs,
		entryOpts: entryOpts,
		scanOpts:  scanOpts,
	}
}

// AnalyzePack は1つの.packファイルを解析します。
// 展開・構造解析のいずれかの段で失敗した場合はその段を示すエラーを返し、
// 部分的な結果は返しません。
func (a *Analyzer) AnalyzePack(ctx context.Context, packPath string) (*models.PackResult, error) {
	// コンテキストのキャンセルチェック
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	raw, err := a.fs.ReadFile(packPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadFile, packPath, err)
	}

	data, err := elpk.Decompress(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", packPath, err)
	}
	a.logger.Printf("展開しました: %s -> %s\n",
		humanize.Bytes(uint64(len(raw))), humanize.Bytes(uint64(len(data))))

	// コンテキストのキャンセルチェック
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	container, err := elpk.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", packPath, err)
	}
	a.logger.Printf("KSEQブロック数: %d\n", len(container.Blocks))

	entries := elpk.ReadEntryTable(container, a.entryOpts)
	a.logger.Printf("エントリ数: %d\n", len(entries))

	// コンテキストのキャンセルチェック
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	texts := elpk.RecoverTexts(data, a.scanOpts)
	a.logger.Printf("復元テキスト数: %s\n", humanize.Comma(int64(len(texts))))

	return &models.PackResult{
		InputFile:        packPath,
		CompressedSize:   len(raw),
		DecompressedSize: len(data),
		Version:          container.Version,
		Header:           container.Header,
		Blocks:           container.Blocks,
		Entries:          entries,
		Texts:            texts,
	}, nil
}
