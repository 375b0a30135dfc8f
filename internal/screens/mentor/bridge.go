package mentor

import (
	"context"

	"github.com/welltegra/welllab/internal/advisor"
	"github.com/welltegra/welllab/internal/screen"
)

// NewBridge creates the concept bridge. Concepts come from a fixed list;
// the hobby is free text with suggestions.
func NewBridge(svc screen.Services) *FormScreen {
	labels := make([]string, len(advisor.Concepts))
	for i, c := range advisor.Concepts {
		labels[i] = c.Label
	}
	return newForm(svc,
		"Concept Bridge",
		"Pick a well-engineering concept and something you already know. The advisor explains one in terms of the other.",
		"translate the concept",
		func(ctx context.Context, adv *advisor.Service, v []string) (string, error) {
			tr, err := adv.TranslateConcept(ctx, v[0], v[1])
			if err != nil {
				return "", err
			}
			return tr.Markdown(), nil
		},
		newChoiceField("Concept", labels),
		newTextField("Hobby or field", "e.g. Scuba Diving", true, advisor.SuggestedHobbies...),
	)
}
