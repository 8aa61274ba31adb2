package core

// Warning is a non-fatal diagnostic surfaced alongside a result, e.g.
// a DegenerateView condition that doesn't abort reconstruction.
type Warning struct {
	Code    string
	Message string
}

// ClusterReport summarizes one spatial cluster found by the view
// partitioner's fallback path, for diagnostics: which entities it
// grouped, how many, and its bounding box. EntityIDSample caps at a
// handful of ids so a report over a large drawing stays small.
type ClusterReport struct {
	EntityCount    int
	BBox           BBox2
	EntityIDSample []uint64
}

// AnalysisReport is the diagnostic summary partition.Partition returns
// alongside the three views: the number of entities in the drawing it
// was given, the clusters the fallback path found (empty if the
// primary layer-tagging path succeeded), and any warnings raised.
type AnalysisReport struct {
	EntitiesTotal int
	UsedFallback  bool
	Clusters      []ClusterReport
	Warnings      []Warning
}
