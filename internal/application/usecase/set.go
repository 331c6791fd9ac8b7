package usecase

// Set groups the use cases exposed by the transports.
type Set struct {
	FullAnalysis      *RunFullAnalysis
	ComputeMetrics    *ComputeMetrics
	CompareBenchmarks *CompareBenchmarks
	AssessRisk        *AssessRisk
	ScoreCredit       *ScoreCredit
	Forecast          *Forecast
	ListIndustries    *ListIndustries
}
