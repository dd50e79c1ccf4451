package app

// Reporter receives the progress of a signature test run.
// console.Printer is the production implementation.
type Reporter interface {
	StartTimer()
	StopTimer()
	Task(name string)
	OK()
	Fail(err error, stack string)
	Completed()
	KeyValue(key, value string)
}
