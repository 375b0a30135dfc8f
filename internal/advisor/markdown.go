package advisor

import (
	"fmt"
	"strings"
)

// Markdown renders the path as a short briefing.
func (c *CareerPath) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s → %s → %s\n\n", c.StartRole, c.MidPath, c.EndGoal)
	fmt.Fprintf(&b, "**Entry role:** %s\n\n", c.StartRole)
	fmt.Fprintf(&b, "**Mid-career:** %s\n\n", c.MidPath)
	fmt.Fprintf(&b, "**Goal:** %s\n\n", c.EndGoal)
	writeList(&b, "Skills to build", c.Skills)
	if c.Justification != "" {
		fmt.Fprintf(&b, "### Why this path\n\n%s\n", c.Justification)
	}
	return b.String()
}

// Markdown renders the translation section by section.
func (t *ConceptTranslation) Markdown() string {
	var b strings.Builder
	sections := []struct{ head, body string }{
		{"The physics", t.PhysicsExplanation},
		{"The analogy", t.HobbyAnalogy},
		{"The math", t.MathematicalLogic},
		{"On the rig", t.RealWorldScenario},
	}
	for _, s := range sections {
		if s.body == "" {
			continue
		}
		fmt.Fprintf(&b, "### %s\n\n%s\n\n", s.head, s.body)
	}
	if t.KeyTakeaway != "" {
		fmt.Fprintf(&b, "> **Key takeaway:** %s\n", t.KeyTakeaway)
	}
	return b.String()
}

// Markdown renders the audit with its score first.
func (a *BackgroundAnalysis) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Transferability: %d/100\n\n", a.TransferabilityScore)
	fmt.Fprintf(&b, "`%s`\n\n", scoreBar(a.TransferabilityScore, 20))
	if a.StrengthsDeepDive != "" {
		fmt.Fprintf(&b, "### Strengths\n\n%s\n\n", a.StrengthsDeepDive)
	}
	if a.GapAnalysis != "" {
		fmt.Fprintf(&b, "### Gaps\n\n%s\n\n", a.GapAnalysis)
	}
	if a.TransitionStrategy != "" {
		fmt.Fprintf(&b, "### Transition strategy\n\n%s\n\n", a.TransitionStrategy)
	}
	writeList(&b, "Recommended focus", a.RecommendedFocus)
	return b.String()
}

func writeList(b *strings.Builder, head string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "### %s\n\n", head)
	for _, it := range items {
		fmt.Fprintf(b, "- %s\n", it)
	}
	b.WriteString("\n")
}

func scoreBar(score, width int) string {
	filled := score * width / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
