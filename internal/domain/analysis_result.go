package domain

import "time"

type AnalysisResult struct {
	Document    *Document
	Benefits    []*Benefit
	TestCases   TestCaseSet
	CompletedAt time.Time
}
