package mentor

import (
	"context"

	"github.com/welltegra/welllab/internal/advisor"
	"github.com/welltegra/welllab/internal/screen"
)

// NewAudit creates the skill audit. Weaknesses are optional.
func NewAudit(svc screen.Services) *FormScreen {
	return newForm(svc,
		"Skill Audit",
		"Summarize your work history. The advisor scores how well it transfers to the drill floor and where the gaps are.",
		"audit your background",
		func(ctx context.Context, adv *advisor.Service, v []string) (string, error) {
			a, err := adv.AnalyzeBackground(ctx, v[0], v[1], v[2])
			if err != nil {
				return "", err
			}
			return a.Markdown(), nil
		},
		newTextField("Employment history", "e.g. 8 years maintenance planner, paper mill", true),
		newTextField("Strengths", "e.g. hydraulics troubleshooting, shift leadership", true),
		newTextField("Weaknesses", "optional", false),
	)
}
