package elpk

import "errors"

var (
	// ErrNotCompressed は入力がGZIP形式でない場合のエラー
	ErrNotCompressed = errors.New("GZIP形式のファイルではありません")

	// ErrDecompressionFailed はGZIPストリームの展開に失敗した場合のエラー
	ErrDecompressionFailed = errors.New("GZIPストリームの展開に失敗しました")

	// ErrMissingRootTag は展開後のデータがELPKタグで始まらない場合のエラー
	ErrMissingRootTag = errors.New("ELPKタグが見つかりません")
)
