package analyzer

import "errors"

var (
	// ErrReadFile は.packファイルの読み込みに失敗した場合のエラー
	ErrReadFile = errors.New(".packファイルの読み込みに失敗しました")
)
