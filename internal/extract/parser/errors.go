package parser

import "errors"

var (
	// ErrScanFailure は字幕データの走査に失敗した場合のエラー
	ErrScanFailure = errors.New("字幕データのスキャンエラー")
)
