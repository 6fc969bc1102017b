package mocks

import (
	"context"

	"github.com/shiroemons/go-kurohyou/internal/extract/models"
)

// MockAnalyzer はAnalyzerのモック実装です
type MockAnalyzer struct {
	Result    *models.PackResult
	Error     error
	CallCount int
	LastPath  string
}

// AnalyzePack はモック実装です
func (m *MockAnalyzer) AnalyzePack(ctx context.Context, packPath string) (*models.PackResult, error) {
	m.CallCount++
	m.LastPath = packPath
	if m.Error != nil {
		return nil, m.Error
	}
	return m.Result, nil
}

// MockPackFileFinder はPackFileFinderのモック実装です
type MockPackFileFinder struct {
	Path  string
	Error error
}

// Find はモック実装です
func (m *MockPackFileFinder) Find() (string, error) {
	if m.Error != nil {
		return "", m.Error
	}
	return m.Path, nil
}
