package reporter

// Reporter defines the interface for progress reporting.
type Reporter interface {
	Info(summary InfoSummary)
	ConversionStarted(summary ConversionSummary)
	ConversionProgress(progress ProgressSnapshot)
	ConversionComplete(outcome ConversionOutcome)
	ValidationComplete(summary ValidationSummary)
	Query(result QueryResult)
	Warning(message string)
	Error(err ReporterError)
	OperationComplete(message string)
	BatchStarted(info BatchStartInfo)
	FileProgress(context FileProgressContext)
	BatchComplete(summary BatchSummary)
	Verbose(message string)
}

// NullReporter is a no-op reporter that discards all updates.
type NullReporter struct{}

func (NullReporter) Info(InfoSummary)                     {}
func (NullReporter) ConversionStarted(ConversionSummary)  {}
func (NullReporter) ConversionProgress(ProgressSnapshot)  {}
func (NullReporter) ConversionComplete(ConversionOutcome) {}
func (NullReporter) ValidationComplete(ValidationSummary) {}
func (NullReporter) Query(QueryResult)                    {}
func (NullReporter) Warning(string)                       {}
func (NullReporter) Error(ReporterError)                  {}
func (NullReporter) OperationComplete(string)             {}
func (NullReporter) BatchStarted(BatchStartInfo)          {}
func (NullReporter) FileProgress(FileProgressContext)     {}
func (NullReporter) BatchComplete(BatchSummary)           {}
func (NullReporter) Verbose(string)                       {}
