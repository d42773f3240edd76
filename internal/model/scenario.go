package model

// ScenarioID names one of the two investments being compared.
type ScenarioID string

const (
	ScenarioSLB  ScenarioID = "slb"
	ScenarioGrid ScenarioID = "grid"
)

// Label is the human-friendly scenario name used in tables and metric lines.
// Earlier variants describe the SLB system as off-grid.
func (id ScenarioID) Label(v Variant) string {
	switch id {
	case ScenarioSLB:
		if v.ModelsFeedIn() {
			return "On-grid with SLB"
		}
		return "Off-grid SLB"
	case ScenarioGrid:
		return "On-grid"
	default:
		return string(id)
	}
}
