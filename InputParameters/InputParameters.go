package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type ApproxParameters struct {
	Title       string  `yaml:"Title"`
	Function    string  `yaml:"Function"`
	Tolerance   float64 `yaml:"Tolerance"`
	MaxDegree   int     `yaml:"MaxDegree"`
	Refinement  string  `yaml:"Refinement"`
	SampleTest  *bool   `yaml:"SampleTest"`
	Extrapolate bool    `yaml:"Extrapolate"`
	Parallel    bool    `yaml:"Parallel"`
	HScale      float64 `yaml:"HScale"`
}

func (ap *ApproxParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ap)
}

func (ap *ApproxParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ap.Title)
	fmt.Printf("[%s]\t\t\t= Function\n", ap.Function)
	fmt.Printf("%8.3g\t\t= Tolerance\n", ap.Tolerance)
	fmt.Printf("[%d]\t\t\t= MaxDegree\n", ap.MaxDegree)
	fmt.Printf("[%s]\t\t= Refinement\n", ap.Refinement)
	if ap.SampleTest != nil {
		fmt.Printf("[%v]\t\t\t= SampleTest\n", *ap.SampleTest)
	}
	fmt.Printf("[%v]\t\t\t= Extrapolate\n", ap.Extrapolate)
	fmt.Printf("[%v]\t\t\t= Parallel\n", ap.Parallel)
	fmt.Printf("%8.5f\t\t= HScale\n", ap.HScale)
}
