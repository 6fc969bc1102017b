package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shiroemons/go-kurohyou/internal/extract/interfaces"
)

// OSFileSystem は実際のOSファイルシステムを使用する実装
type OSFileSystem struct{}

// NewOSFileSystem は新しいOSFileSystemを作成します
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// FileExists はファイルが存在するか確認します
func (fs *OSFileSystem) FileExists(filename string) bool {
	_, err := os.Stat(filename)
	return err == nil
}

// ReadFile はファイルを読み込みます
func (fs *OSFileSystem) ReadFile(filename string) ([]byte, error) {
	return os.ReadFile(filename)
}

// WriteFile はファイルを書き込みます
func (fs *OSFileSystem) WriteFile(filename string, data []byte, perm uint32) error {
	return os.WriteFile(filename, data, os.FileMode(perm))
}

// MkdirAll はディレクトリを作成します
func (fs *OSFileSystem) MkdirAll(path string, perm uint32) error {
	return os.MkdirAll(path, os.FileMode(perm))
}

// ReadDir はディレクトリを読み込みます
func (fs *OSFileSystem) ReadDir(dirname string) ([]interfaces.DirEntry, error) {
	entries, err := os.ReadDir(dirname)
	if err != nil {
		return nil, err
	}

	result := make([]interfaces.DirEntry, len(entries))
	for i, entry := range entries {
		result[i] = &osDirEntry{entry}
	}
	return result, nil
}

// Getwd は現在の作業ディレクトリを取得します
func (fs *OSFileSystem) Getwd() (string, error) {
	return os.Getwd()
}

// Executable は実行ファイルのパスを取得します
func (fs *OSFileSystem) Executable() (string, error) {
	return os.Executable()
}

// osDirEntry はos.DirEntryのラッパー
type osDirEntry struct {
	os.DirEntry
}

// Name はエントリ名を返します
func (de *osDirEntry) Name() string {
	return de.DirEntry.Name()
}

// IsDir はディレクトリかどうかを返します
func (de *osDirEntry) IsDir() bool {
	return de.DirEntry.IsDir()
}

// PackFileFinder は.packファイルの検索を行います。
// 再帰的な探索は行わず、カレントディレクトリと実行ファイルの
// ディレクトリのみを対象にします。
type PackFileFinder struct {
	fs interfaces.FileSystem
}

// NewPackFileFinder は新しいPackFileFinderを作成します
func NewPackFileFinder() *PackFileFinder {
	return &PackFileFinder{fs: NewOSFileSystem()}
}

// NewPackFileFinderWithFS は新しいPackFileFinderをFileSystem付きで作成します
func NewPackFileFinderWithFS(fs interfaces.FileSystem) *PackFileFinder {
	return &PackFileFinder{fs: fs}
}

// Find は実行ファイルと同じディレクトリおよびカレントディレクトリから.packファイルを検索します。
// 見つからない場合は空文字列を返します (エラーではありません)。
func (f *PackFileFinder) Find() (string, error) {
	var packFiles []string

	// カレントディレクトリを取得
	currentDir, err := f.fs.Getwd()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrGetCurrentDirectory, err)
	}

	// まずカレントディレクトリを検索
	currentDirFiles, err := f.findInDir(currentDir)
	if err != nil {
		return "", err
	}
	packFiles = append(packFiles, currentDirFiles...)

	// カレントディレクトリで見つかった場合は他のディレクトリは検索しない
	if len(packFiles) > 0 {
		if len(packFiles) > 1 {
			return "", f.createMultipleFilesError(packFiles)
		}
		return packFiles[0], nil
	}

	// 実行ファイルのパスを取得
	execPath, err := f.fs.Executable()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrGetExecutablePath, err)
	}

	// 実行ファイルのディレクトリを検索
	execDirFiles, err := f.findInDir(filepath.Dir(execPath))
	if err != nil {
		return "", err
	}
	packFiles = append(packFiles, execDirFiles...)

	if len(packFiles) == 0 {
		return "", nil
	}

	if len(packFiles) > 1 {
		return "", f.createMultipleFilesError(packFiles)
	}

	return packFiles[0], nil
}

// findInDir は指定されたディレクトリ内の.packファイルを検索します
func (f *PackFileFinder) findInDir(dir string) ([]string, error) {
	var packFiles []string

	files, err := f.fs.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadDirectory, dir, err)
	}

	for _, file := range files {
		if file.IsDir() {
			continue
		}

		if PackFilePattern.MatchString(file.Name()) {
			packFiles = append(packFiles, filepath.Join(dir, file.Name()))
		}
	}

	return packFiles, nil
}

// createMultipleFilesError は複数の.packファイルが見つかった場合のエラーを生成します
func (f *PackFileFinder) createMultipleFilesError(packFiles []string) error {
	fileNames := make([]string, len(packFiles))
	for i, path := range packFiles {
		fileNames[i] = filepath.Base(path)
	}
	return fmt.Errorf("%w: %s", ErrMultiplePackFiles, strings.Join(fileNames, ", "))
}
