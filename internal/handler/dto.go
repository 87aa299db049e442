package handler

// HeadcountEntry is one bar of the headcount-by-department chart,
// sorted by department name so the payload is deterministic.
type HeadcountEntry struct {
	Department string `json:"department"`
	Count      int    `json:"count"`
}
