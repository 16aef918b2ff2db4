package reporter

// CompositeReporter fans out events to multiple reporters.
type CompositeReporter struct {
	reporters []Reporter
}

// NewCompositeReporter creates a composite reporter.
func NewCompositeReporter(reporters ...Reporter) *CompositeReporter {
	return &CompositeReporter{reporters: reporters}
}

func (c *CompositeReporter) Info(summary InfoSummary) {
	for _, r := range c.reporters {
		r.Info(summary)
	}
}

func (c *CompositeReporter) ConversionStarted(summary ConversionSummary) {
	for _, r := range c.reporters {
		r.ConversionStarted(summary)
	}
}

func (c *CompositeReporter) ConversionProgress(progress ProgressSnapshot) {
	for _, r := range c.reporters {
		r.ConversionProgress(progress)
	}
}

func (c *CompositeReporter) ConversionComplete(outcome ConversionOutcome) {
	for _, r := range c.reporters {
		r.ConversionComplete(outcome)
	}
}

func (c *CompositeReporter) ValidationComplete(summary ValidationSummary) {
	for _, r := range c.reporters {
		r.ValidationComplete(summary)
	}
}

func (c *CompositeReporter) Query(result QueryResult) {
	for _, r := range c.reporters {
		r.Query(result)
	}
}

func (c *CompositeReporter) Warning(message string) {
	for _, r := range c.reporters {
		r.Warning(message)
	}
}

func (c *CompositeReporter) Error(err ReporterError) {
	for _, r := range c.reporters {
		r.Error(err)
	}
}

func (c *CompositeReporter) OperationComplete(message string) {
	for _, r := range c.reporters {
		r.OperationComplete(message)
	}
}

func (c *CompositeReporter) BatchStarted(info BatchStartInfo) {
	for _, r := range c.reporters {
		r.BatchStarted(info)
	}
}

func (c *CompositeReporter) FileProgress(context FileProgressContext) {
	for _, r := range c.reporters {
		r.FileProgress(context)
	}
}

func (c *CompositeReporter) BatchComplete(summary BatchSummary) {
	for _, r := range c.reporters {
		r.BatchComplete(summary)
	}
}

func (c *CompositeReporter) Verbose(message string) {
	for _, r := range c.reporters {
		r.Verbose(message)
	}
}
