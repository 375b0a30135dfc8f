package mentor

import (
	"context"

	"github.com/welltegra/welllab/internal/advisor"
	"github.com/welltegra/welllab/internal/screen"
)

// NewCareer creates the career mapper.
func NewCareer(svc screen.Services) *FormScreen {
	return newForm(svc,
		"Career Mapper",
		"Describe what drives you and where you come from. The advisor maps a route into well engineering.",
		"map a career path",
		func(ctx context.Context, adv *advisor.Service, v []string) (string, error) {
			path, err := adv.CareerPath(ctx, v[0], v[1])
			if err != nil {
				return "", err
			}
			return path.Markdown(), nil
		},
		newTextField("Interests", "e.g. fluid mechanics, heavy machinery, data", true),
		newTextField("Background", "e.g. HVAC technician, 6 years", true),
	)
}
