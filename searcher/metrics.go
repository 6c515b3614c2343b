package searcher

import "time"

type SearchMetric struct {
	Duration    time.Duration
	Depth       int // Deepest completed search
	Nodes       int
	Evaluations int
	Cutoffs     int
	TimedOut    bool
}

// Collector records search statistics. Searches are single-threaded so no
// synchronization is needed.
type Collector interface {
	Start()
	AddNode()
	AddEvaluation()
	AddCutoff()
	CompleteDepth(depth int)
	SetTimedOut()
	Complete() SearchMetric
}

type collector struct {
	startTime time.Time
	metric    SearchMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
	m.metric = SearchMetric{}
}

func (m *collector) AddNode() {
	m.metric.Nodes++
}

func (m *collector) AddEvaluation() {
	m.metric.Evaluations++
}

func (m *collector) AddCutoff() {
	m.metric.Cutoffs++
}

func (m *collector) CompleteDepth(depth int) {
	if depth > m.metric.Depth {
		m.metric.Depth = depth
	}
}

func (m *collector) SetTimedOut() {
	m.metric.TimedOut = true
}

func (m *collector) Complete() SearchMetric {
	metric := m.metric
	metric.Duration = time.Since(m.startTime)
	return metric
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                  {}
func (m *dummyCollector) AddNode()                {}
func (m *dummyCollector) AddEvaluation()          {}
func (m *dummyCollector) AddCutoff()              {}
func (m *dummyCollector) CompleteDepth(depth int) {}
func (m *dummyCollector) SetTimedOut()            {}
func (m *dummyCollector) Complete() SearchMetric  { return SearchMetric{} }
