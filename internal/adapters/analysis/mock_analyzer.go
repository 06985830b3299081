package analysis

import (
	"context"
	"errors"

	"trip-planner-service/internal/ports"
)

// MockAnalyzer returns a canned analysis, or fails when Err is set.
type MockAnalyzer struct {
	Result ports.Analysis
	Err    error
}

func (m *MockAnalyzer) Analyze(ctx context.Context, req ports.AnalysisRequest) (ports.Analysis, error) {
	if m.Err != nil {
		return ports.Analysis{}, m.Err
	}
	return m.Result, nil
}

// ErrAnalyzerDown is a convenience error for failure-path tests.
var ErrAnalyzerDown = errors.New("analysis backend unavailable")
