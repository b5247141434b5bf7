package tasks

import "fmt"

// ProgressUpdate represents a progress event during a playlist build.
//
// Used to send real-time updates to the CLI or UI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
	Year    int    // Chart year, when the phase concerns a single date
	Songs   int    // Songs kept so far or in this step, phase dependent
}

// Operation phase enumeration
type Phase int

const (
	FetchChart Phase = iota
	ChartFetched
	BuildComplete
)

func (p Phase) String() string {
	switch p {
	case FetchChart:
		return "fetch_chart"
	case ChartFetched:
		return "chart_fetched"
	case BuildComplete:
		return "build_complete"
	default:
		return ""
	}
}

func fetchChartUpdate(step, total int, iso string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchChart,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("Fetching %s chart…", iso),
	}
}

func chartFetchedUpdate(step, total, year, kept int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ChartFetched,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] %d: kept %d songs", step, total, year, kept),
		Year:    year,
		Songs:   kept,
	}
}

func buildCompleteUpdate(total, songs int) ProgressUpdate {
	message := "No songs returned for this range."
	if songs > 0 {
		message = fmt.Sprintf("Found %d songs.", songs)
	}
	return ProgressUpdate{
		Phase:   BuildComplete,
		Step:    total,
		Total:   total,
		Message: message,
		Songs:   songs,
	}
}
