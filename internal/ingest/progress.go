package ingest

// Task identifies one of the progress bars shown while loading.
type Task int

const (
	TaskDirectories Task = iota
	TaskFiles
	TaskProcessing
)

// Tasks lists every task in display order.
var Tasks = []Task{TaskDirectories, TaskFiles, TaskProcessing}

func (t Task) String() string {
	switch t {
	case TaskDirectories:
		return "Reading directories"
	case TaskFiles:
		return "Reading files"
	case TaskProcessing:
		return "Processing analytics"
	default:
		return "unknown"
	}
}

// Progress receives percentage increments per task. Each task totals 100 once
// loading succeeds. Implementations must be safe for concurrent use, since file
// reads report from several goroutines.
type Progress interface {
	Increment(task Task, delta float64)
}

// ProgressFunc adapts a function to Progress.
type ProgressFunc func(task Task, delta float64)

func (f ProgressFunc) Increment(task Task, delta float64) { f(task, delta) }

type nopProgress struct{}

func (nopProgress) Increment(Task, float64) {}

// share is one item's slice of a task's 100 percent.
func share(items int) float64 {
	if items == 0 {
		return 100
	}
	return 100 / float64(items)
}
