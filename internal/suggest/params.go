package suggest

import (
	_ "embed"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed policy.yaml
var policyYAML []byte

// ConfidencePolicy describes how a cluster size maps to a confidence score:
// min(Base + PerPhoto * n, Cap). The values are heuristic policy, not
// calibrated statistics.
type ConfidencePolicy struct {
	Base     float64 `yaml:"base"`
	PerPhoto float64 `yaml:"per_photo"`
	Cap      float64 `yaml:"cap"`
}

// Params holds the tuning knobs for the suggestion engine. The shipped values
// come from the embedded policy.yaml.
type Params struct {
	QuietWindowMinutes  int     `yaml:"quiet_window_minutes"`
	ClusterRadiusMeters float64 `yaml:"cluster_radius_meters"`
	MinClusterSize      int     `yaml:"min_cluster_size"`
	MaxSuggestions      int     `yaml:"max_suggestions"`
	Confidence          struct {
		Date     ConfidencePolicy `yaml:"date"`
		Location ConfidencePolicy `yaml:"location"`
	} `yaml:"confidence"`
}

// QuietWindow returns the temporal session window as a duration.
func (p Params) QuietWindow() time.Duration {
	return time.Duration(p.QuietWindowMinutes) * time.Minute
}

// DefaultParams returns the parameters from the embedded policy file.
func DefaultParams() Params {
	var p Params
	if err := yaml.Unmarshal(policyYAML, &p); err != nil {
		// Embedded file, so this can only fail on a bad commit.
		panic("failed to unmarshal embedded policy.yaml: " + err.Error())
	}
	return p
}
