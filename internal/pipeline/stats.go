package pipeline

// RunStats tracks aggregate counters across one batch run.
type RunStats struct {
	Discovered int
	Planned    int
	Excluded   int
	Renamed    int
	Failed     int
	Skipped    int
	Reverted   int

	BytesRenamed int64
}
