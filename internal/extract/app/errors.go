package app

import "errors"

var (
	// ErrAnalyzePack は.packファイルの解析に失敗した場合のエラー
	ErrAnalyzePack = errors.New(".packファイルの解析に失敗しました")

	// ErrParseCues は字幕データの解析に失敗した場合のエラー
	ErrParseCues = errors.New("字幕データの解析に失敗しました")

	// ErrSaveFile はファイルの保存に失敗した場合のエラー
	ErrSaveFile = errors.New("ファイルの保存に失敗しました")

	// ErrReadFile はファイルの読み込みに失敗した場合のエラー
	ErrReadFile = errors.New("ファイルの読み込みに失敗しました")

	// ErrNoInputFiles は解析対象のファイルが見つからない場合のエラー
	ErrNoInputFiles = errors.New("解析対象の.packファイルまたは字幕ファイルがありません")
)
