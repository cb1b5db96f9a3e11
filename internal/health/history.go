package health

import (
	"fmt"
	"strconv"
)

// History is the ordered list of records for one session, oldest first.
// It is not safe for concurrent use; owners serialise access.
type History struct {
	records []Record
}

func NewHistory() *History {
	return &History{}
}

func (h *History) Append(r Record) {
	h.records = append(h.records, r)
}

func (h *History) Len() int {
	return len(h.records)
}

func (h *History) Reset() {
	h.records = nil
}

// Snapshot returns a copy of the records, most recent first.
func (h *History) Snapshot() []Record {
	out := make([]Record, len(h.records))
	for i, r := range h.records {
		out[len(h.records)-1-i] = r
	}
	return out
}

// FormatHistory renders one numbered line per record. records must be most
// recent first. Heights are labelled with displayUnit; when it is empty the
// unit of the most recent calculation is used.
func FormatHistory(records []Record, displayUnit HeightUnit) []string {
	if len(records) == 0 {
		return []string{}
	}
	if displayUnit == "" {
		displayUnit = records[0].HeightUnit
	}

	lines := make([]string, 0, len(records))
	for i, r := range records {
		lines = append(lines, fmt.Sprintf(
			"%d. BMI: %s, Weight: %s kg, Height: %s %s, Age: %d, Gender: %s, Activity: %s",
			i+1,
			formatNumber(r.BMI),
			formatNumber(r.WeightKg),
			formatNumber(r.HeightRaw),
			displayUnit,
			r.AgeYears,
			r.Gender.Label(),
			r.ActivityLevel.Label(),
		))
	}
	return lines
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
