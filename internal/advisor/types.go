package advisor

// CareerPath is a suggested progression into well engineering.
type CareerPath struct {
	StartRole     string   `json:"startRole"`
	MidPath       string   `json:"midPath"`
	EndGoal       string   `json:"endGoal"`
	Skills        []string `json:"skills"`
	Justification string   `json:"justification"`
}

// ConceptTranslation bridges a drilling concept to a familiar domain.
type ConceptTranslation struct {
	PhysicsExplanation string `json:"physicsExplanation"`
	HobbyAnalogy       string `json:"hobbyAnalogy"`
	MathematicalLogic  string `json:"mathematicalLogic"`
	KeyTakeaway        string `json:"keyTakeaway"`
	RealWorldScenario  string `json:"realWorldScenario"`
}

// BackgroundAnalysis is a competency gap analysis for a career changer.
type BackgroundAnalysis struct {
	// TransferabilityScore is in [0, 100].
	TransferabilityScore int      `json:"transferabilityScore"`
	StrengthsDeepDive    string   `json:"strengthsDeepDive"`
	GapAnalysis          string   `json:"gapAnalysis"`
	TransitionStrategy   string   `json:"transitionStrategy"`
	RecommendedFocus     []string `json:"recommendedFocus"`
}

// Concept is a well-engineering topic offered by the concept bridge.
type Concept struct {
	ID    string
	Label string
}

// Concepts lists the topics the concept bridge can explain.
var Concepts = []Concept{
	{ID: "hydrostatics", Label: "Hydrostatic Pressure"},
	{ID: "hole_cleaning", Label: "Hole Cleaning"},
	{ID: "gas_migration", Label: "Gas Migration"},
	{ID: "well_control", Label: "Well Control & BOP"},
	{ID: "directional", Label: "Directional Drilling"},
	{ID: "mpd", Label: "Managed Pressure Drilling"},
	{ID: "hydraulics", Label: "Wellbore Hydraulics"},
	{ID: "casing", Label: "Casing & Tubing Design"},
}

// SuggestedHobbies seeds the hobby picker.
var SuggestedHobbies = []string{
	"Scuba Diving", "F1 Car Hydraulics", "Aquarium Design",
	"Residential Plumbing", "Mountain Biking", "Espresso Extraction",
	"Pressure Canning", "Photography", "Gardening",
}

// LookupConcept finds a concept by id or label, case-insensitively.
func LookupConcept(s string) (Concept, bool) {
	for _, c := range Concepts {
		if equalFold(c.ID, s) || equalFold(c.Label, s) {
			return c, true
		}
	}
	return Concept{}, false
}
