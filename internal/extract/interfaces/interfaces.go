// Package interfaces は抽出コマンドで使用するインターフェースを定義します
package interfaces

import (
	"context"

	"github.com/shiroemons/go-kurohyou/internal/extract/models"
)

// FileSystem はファイルシステム操作のインターフェース
type FileSystem interface {
	FileExists(filename string) bool
	ReadFile(filename string) ([]byte, error)
	WriteFile(filename string, data []byte, perm uint32) error
	MkdirAll(path string, perm uint32) error
	ReadDir(dirname string) ([]DirEntry, error)
	Getwd() (string, error)
	Executable() (string, error)
}

// DirEntry はディレクトリエントリのインターフェース
type DirEntry interface {
	Name() string
	IsDir() bool
}

// Analyzer は.packファイルを解析するインターフェースです
type Analyzer interface {
	AnalyzePack(ctx context.Context, packPath string) (*models.PackResult, error)
}

// PackFileFinder は.packファイルを検索するインターフェースです
type PackFileFinder interface {
	Find() (string, error)
}

// CueParser は字幕行を解析するインターフェース
type CueParser interface {
	ParseCues(data string) ([]*models.TimedCue, error)
}

// Logger はログ出力のインターフェース
type Logger interface {
	Printf(format string, a ...any)
}
