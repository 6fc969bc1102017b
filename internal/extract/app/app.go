// Package app はアプリケーションのメインロジックを実装します
package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/shiroemons/go-kurohyou/internal/extract/analyzer"
	"github.com/shiroemons/go-kurohyou/internal/extract/config"
	"github.com/shiroemons/go-kurohyou/internal/extract/fileutil"
	"github.com/shiroemons/go-kurohyou/internal/extract/interfaces"
	"github.com/shiroemons/go-kurohyou/internal/extract/models"
	"github.com/shiroemons/go-kurohyou/internal/extract/parser"
)

// App はアプリケーションのメインロジックを管理します
type App struct {
	config     *config.Config
	logger     *config.DebugLogger
	analyzer   interfaces.Analyzer
	cueParser  *parser.CueParser
	packFinder interfaces.PackFileFinder
	fs         interfaces.FileSystem
}

// Options はAppの設定オプション
type Options struct {
	FileSystem interfaces.FileSystem
	Analyzer   interfaces.Analyzer
	PackFinder interfaces.PackFileFinder
}

// New は新しいAppを作成します
func New(cfg *config.Config) *App {
	return NewWithOptions(cfg, Options{})
}

// NewWithOptions は新しいAppをオプション付きで作成します
func NewWithOptions(cfg *config.Config, opts Options) *App {
	logger := config.NewDebugLogger(cfg.DebugMode)

	// デフォルトのファイルシステムを設定
	fs := opts.FileSystem
	if fs == nil {
		fs = fileutil.NewOSFileSystem()
	}

	// デフォルトのAnalyzerを設定
	var packAnalyzer interfaces.Analyzer
	if opts.Analyzer != nil {
		packAnalyzer = opts.Analyzer
	} else {
		packAnalyzer = analyzer.NewWithOptions(logger, analyzer.Options{FileSystem: fs})
	}

	// デフォルトのPackFileFinderを設定
	var packFinder interfaces.PackFileFinder
	if opts.PackFinder != nil {
		packFinder = opts.PackFinder
	} else {
		packFinder = fileutil.NewPackFileFinderWithFS(fs)
	}

	return &App{
		config:     cfg,
		logger:     logger,
		analyzer:   packAnalyzer,
		cueParser:  parser.NewCueParser(),
		packFinder: packFinder,
		fs:         fs,
	}
}

// Run はアプリケーションを実行します。
// .packファイルと字幕ファイルはそれぞれ独立したパイプラインで処理します。
// どちらも指定されていない場合は.packファイルの自動検出を試みます。
func (a *App) Run(ctx context.Context) error {
	ran := false

	if a.config.PackPath != "" {
		if err := a.runPackPipeline(ctx, a.config.PackPath); err != nil {
			return err
		}
		ran = true
	}

	if a.config.CuePath != "" {
		if err := a.runCuePipeline(ctx, a.config.CuePath); err != nil {
			return err
		}
		ran = true
	}

	if ran {
		return nil
	}

	// 入力が指定されていない場合、.packファイルの自動検出を試みる
	packFile, err := a.packFinder.Find()
	if err != nil {
		return err
	}
	if packFile == "" {
		return ErrNoInputFiles
	}

	a.logger.Printf("自動検出した.packファイル %s を解析します...\n", filepath.Base(packFile))
	return a.runPackPipeline(ctx, packFile)
}

// runPackPipeline は.packファイルを解析して結果を出力します
func (a *App) runPackPipeline(ctx context.Context, packPath string) error {
	result, err := a.analyzer.AnalyzePack(ctx, packPath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrAnalyzePack, err)
	}

	output := a.generatePackReport(result)
	return a.writeReport("dialogue", packPath, output)
}

// runCuePipeline は字幕ファイルを解析して結果を出力します
func (a *App) runCuePipeline(ctx context.Context, cuePath string) error {
	// コンテキストのキャンセルチェック
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	data, err := a.fs.ReadFile(cuePath)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrReadFile, cuePath, err)
	}

	cues, err := a.cueParser.ParseCues(string(data))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrParseCues, err)
	}

	result := &models.CueResult{
		InputFile: cuePath,
		Cues:      cues,
		Stats:     parser.ComputeStatistics(cues),
	}

	output := a.generateCueReport(result)
	return a.writeReport("cues", cuePath, output)
}

// writeReport は出力内容をファイルに保存し、標準出力にも表示します
func (a *App) writeReport(prefix, inputPath, output string) error {
	if a.config.DryRun {
		a.logger.Printf("ドライランのためファイルは保存しません\n")
	} else {
		outputFilename := fileutil.GenerateOutputFilename(prefix, inputPath)
		outputPath := filepath.Join(a.config.OutputDir, outputFilename)

		if err := fileutil.SaveToFileWithBOM(outputPath, output); err != nil {
			return fmt.Errorf("%w: %w", ErrSaveFile, err)
		}

		a.logger.Printf("データを %s に保存しました\n", outputPath)
	}

	// 標準出力にも表示
	fmt.Println(output)

	return nil
}

// generatePackReport は.pack解析結果の出力内容を生成します
func (a *App) generatePackReport(result *models.PackResult) string {
	var builder strings.Builder

	// ヘッダー情報
	builder.WriteString("#クロヒョウ台詞データ\n")
	builder.WriteString(fmt.Sprintf("#入力: %s\n", filepath.Base(result.InputFile)))
	builder.WriteString(fmt.Sprintf("#展開サイズ: %s (圧縮時 %s)\n",
		humanize.Bytes(uint64(result.DecompressedSize)),
		humanize.Bytes(uint64(result.CompressedSize))))
	builder.WriteString(fmt.Sprintf("#KSEQブロック: %d、エントリ: %d、復元テキスト: %d\n",
		len(result.Blocks), len(result.Entries), len(result.Texts)))

	if len(result.Entries) > 0 {
		builder.WriteString("#エントリテーブル\n")
		builder.WriteString("#ID、オフセット、長さ (IDは16進値として記述する)\n")
		for _, entry := range result.Entries {
			builder.WriteString(fmt.Sprintf("%08X,%d,%d\n", entry.ID, entry.Offset, entry.Length))
		}
	}

	builder.WriteString("#復元テキスト\n")
	builder.WriteString("#オフセット、判定、テキスト (オフセットは16進値として記述する)\n")
	for _, text := range result.Texts {
		builder.WriteString(fmt.Sprintf("%06X,%s,%s\n", text.SourceOffset, text.AcceptedBy, text.Text))
	}

	return builder.String()
}

// generateCueReport は字幕解析結果の出力内容を生成します
func (a *App) generateCueReport(result *models.CueResult) string {
	var builder strings.Builder

	stats := result.Stats

	// ヘッダー情報
	builder.WriteString("#カットシーン字幕データ\n")
	builder.WriteString(fmt.Sprintf("#入力: %s\n", filepath.Base(result.InputFile)))
	builder.WriteString(fmt.Sprintf("#行数: %d (台詞 %d、間 %d)\n",
		stats.TotalLines, stats.DialogueLines, stats.PauseLines))
	builder.WriteString(fmt.Sprintf("#総文字数: %d (台詞1行あたり %.1f)\n",
		stats.TotalChars, stats.AvgChars))
	builder.WriteString(fmt.Sprintf("#総表示時間: %s (台詞1行あたり %.1f frames / %.2fs)\n",
		parser.FormatDuration(stats.TotalDurationFrames),
		stats.AvgDurationFrames, stats.AvgDurationSeconds))

	// 字幕データ
	builder.WriteString("#開始フレーム、終了フレーム、テキスト\n")
	for _, cue := range result.Cues {
		if cue.IsPause {
			builder.WriteString(fmt.Sprintf("[%3d] (間) %s\n", cue.LineIndex, cue.Text))
		} else {
			builder.WriteString(fmt.Sprintf("[%3d] %d,%d,%s\n",
				cue.LineIndex, cue.StartFrame, cue.EndFrame, cue.Text))
		}
	}

	return builder.String()
}
