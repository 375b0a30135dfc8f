package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/welltegra/welllab/internal/llm"
)

func mockWith(content string) *llm.MockProvider {
	return llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(content)})
}

func TestCareerPath(t *testing.T) {
	mock := mockWith(`{
		"startRole": "Floorhand",
		"midPath": "Mud Engineer",
		"endGoal": "Senior Well Engineer",
		"skills": ["IWCF Level 2", "Drillbench"],
		"justification": "Hands-on hydraulics background."
	}`)
	svc := NewService(mock, DefaultConfig())

	path, err := svc.CareerPath(context.Background(), "fluid dynamics", "HVAC technician")
	require.NoError(t, err)
	assert.Equal(t, "Floorhand", path.StartRole)
	assert.Equal(t, []string{"IWCF Level 2", "Drillbench"}, path.Skills)

	require.Equal(t, 1, mock.CallCount())
	call := mock.Calls[0]
	assert.Equal(t, CareerPathSchema, call.Schema)
	assert.Equal(t, llm.TierDeep, call.Tier)
	assert.Equal(t, []string{PurposeCareer}, mock.Purposes)
	assert.Contains(t, call.Messages[0].Content, "HVAC technician")
}

func TestTranslateConceptResolvesConceptLabel(t *testing.T) {
	mock := mockWith(`{
		"physicsExplanation": "P = 0.052 x MW x TVD",
		"hobbyAnalogy": "Depth under water",
		"mathematicalLogic": "Every 33 ft of seawater adds one atmosphere.",
		"keyTakeaway": "Head depends on vertical depth only.",
		"realWorldScenario": "Kick detection during a trip."
	}`)
	svc := NewService(mock, DefaultConfig())

	tr, err := svc.TranslateConcept(context.Background(), "hydrostatics", "Scuba Diving")
	require.NoError(t, err)
	assert.Equal(t, "Depth under water", tr.HobbyAnalogy)
	assert.Contains(t, mock.Calls[0].Messages[0].Content, `"Hydrostatic Pressure"`)
	assert.Contains(t, mock.Calls[0].Messages[0].Content, `"Scuba Diving"`)
}

func TestKnowledgeCheck(t *testing.T) {
	mock := mockWith(`{"questions":[
		{"question":"Gradient of fresh water?","options":["0.433 psi/ft","0.052 psi/ft","1 psi/ft"],"correctIndex":0,"explanation":"8.33 x 0.052"},
		{"question":"Boycott settling peaks near?","options":["0 deg","45 deg"],"correctIndex":1,"explanation":"Mid-angle"},
		{"question":"Gas rising in a shut-in well?","options":["Pressure rises","Pressure falls"],"correctIndex":0,"explanation":"Bubble keeps its pressure"}
	]}`)
	svc := NewService(mock, DefaultConfig())

	qs, err := svc.KnowledgeCheck(context.Background(), "Hydrostatics", "P = 0.052 x MW x TVD")
	require.NoError(t, err)
	require.Len(t, qs, 3)
	assert.Equal(t, "0.433 psi/ft", qs[0].Options[qs[0].CorrectIndex])
	assert.Equal(t, llm.TierFast, mock.Calls[0].Tier)
	assert.Contains(t, mock.Calls[0].Messages[0].Content, "3-question")
}

func TestKnowledgeCheckFailsClosed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"no questions", `{"questions":[]}`},
		{"index out of range", `{"questions":[{"question":"q","options":["a","b"],"correctIndex":2,"explanation":""}]}`},
		{"single option", `{"questions":[{"question":"q","options":["a"],"correctIndex":0,"explanation":""}]}`},
		{"blank prompt", `{"questions":[{"question":"","options":["a","b"],"correctIndex":0,"explanation":""}]}`},
		{"short check", `{"questions":[
			{"question":"q1","options":["a","b"],"correctIndex":0,"explanation":""},
			{"question":"q2","options":["a","b"],"correctIndex":1,"explanation":""}
		]}`},
		{"long check", `{"questions":[
			{"question":"q1","options":["a","b"],"correctIndex":0,"explanation":""},
			{"question":"q2","options":["a","b"],"correctIndex":1,"explanation":""},
			{"question":"q3","options":["a","b"],"correctIndex":0,"explanation":""},
			{"question":"q4","options":["a","b"],"correctIndex":1,"explanation":""}
		]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(mockWith(tt.content), DefaultConfig())
			qs, err := svc.KnowledgeCheck(context.Background(), "t", "c")
			assert.Nil(t, qs)
			assert.ErrorIs(t, err, ErrMalformedQuiz)
		})
	}
}

func TestKnowledgeCheckCountFollowsConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.KnowledgeCheckCount = 1
	mock := mockWith(`{"questions":[{"question":"q","options":["a","b"],"correctIndex":1,"explanation":""}]}`)
	svc := NewService(mock, cfg)

	qs, err := svc.KnowledgeCheck(context.Background(), "t", "c")
	require.NoError(t, err)
	assert.Len(t, qs, 1)
	assert.Contains(t, mock.Calls[0].Messages[0].Content, "1-question")
}

func TestAnalyzeBackgroundClampsScore(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"72.4", 72},
		{"140", 100},
		{"-5", 0},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			mock := mockWith(`{
				"transferabilityScore": ` + tt.raw + `,
				"strengthsDeepDive": "Rotating equipment",
				"gapAnalysis": "No well control ticket",
				"transitionStrategy": "IWCF Level 2 first",
				"recommendedFocus": ["Well control", "Hydraulics"]
			}`)
			svc := NewService(mock, DefaultConfig())

			a, err := svc.AnalyzeBackground(context.Background(), "Marine engineer", "Pumps", "")
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.TransferabilityScore)
			assert.Len(t, a.RecommendedFocus, 2)
			assert.NotContains(t, mock.Calls[0].Messages[0].Content, "Weaknesses")
		})
	}
}

func TestMissingInputSkipsProvider(t *testing.T) {
	mock := llm.NewMockProvider()
	svc := NewService(mock, DefaultConfig())
	ctx := context.Background()

	_, err := svc.CareerPath(ctx, "drilling", "  ")
	assert.ErrorIs(t, err, ErrMissingInput)
	assert.Contains(t, err.Error(), "background")

	_, err = svc.TranslateConcept(ctx, "", "Gardening")
	assert.ErrorIs(t, err, ErrMissingInput)

	_, err = svc.KnowledgeCheck(ctx, "Title", "")
	assert.ErrorIs(t, err, ErrMissingInput)

	_, err = svc.AnalyzeBackground(ctx, "", "strong", "weak")
	assert.ErrorIs(t, err, ErrMissingInput)

	assert.Zero(t, mock.CallCount())
}

func TestProviderErrorIsWrapped(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrRateLimit{Err: errors.New("429")}})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.CareerPath(context.Background(), "a", "b")
	require.Error(t, err)
	var rl *llm.ErrRateLimit
	assert.ErrorAs(t, err, &rl)
	assert.True(t, strings.HasPrefix(err.Error(), PurposeCareer))
}

func TestMalformedJSONFails(t *testing.T) {
	svc := NewService(mockWith(`not json`), DefaultConfig())
	_, err := svc.TranslateConcept(context.Background(), "mpd", "Photography")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

type purposeRecorder struct {
	purposes []string
}

func (p *purposeRecorder) Generate(ctx context.Context, _ llm.Request) (*llm.Response, error) {
	p.purposes = append(p.purposes, llm.PurposeFrom(ctx))
	return nil, errors.New("offline")
}

func (p *purposeRecorder) ModelID() string { return "recorder" }

func TestPurposeLabels(t *testing.T) {
	rec := &purposeRecorder{}
	svc := NewService(rec, DefaultConfig())
	ctx := context.Background()

	_, _ = svc.CareerPath(ctx, "a", "b")
	_, _ = svc.TranslateConcept(ctx, "a", "b")
	_, _ = svc.KnowledgeCheck(ctx, "a", "b")
	_, _ = svc.AnalyzeBackground(ctx, "a", "b", "")

	assert.Equal(t, []string{PurposeCareer, PurposeBridge, PurposeKnowledgeCheck, PurposeAudit}, rec.purposes)
}

func TestLookupConcept(t *testing.T) {
	c, ok := LookupConcept("well control & bop")
	require.True(t, ok)
	assert.Equal(t, "well_control", c.ID)

	_, ok = LookupConcept("astrophysics")
	assert.False(t, ok)
	assert.Len(t, Concepts, 8)
}
