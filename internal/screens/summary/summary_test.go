package summary

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/welltegra/welllab/internal/quiz"
	"github.com/welltegra/welllab/internal/router"
)

func testResult() Result {
	return Result{
		LessonTitle: "Hydrostatic Pressure",
		Questions: []quiz.Question{
			{Prompt: "Which depth sets hydrostatic pressure?", Options: []string{"MD", "TVD"}, CorrectIndex: 1},
			{Prompt: "1 SG in ppg?", Options: []string{"8.33", "10"}, CorrectIndex: 0},
			{Prompt: "Gradient constant?", Options: []string{"0.052", "0.433"}, CorrectIndex: 0},
		},
		Answers: []quiz.Answer{{Chosen: 1, Correct: true}, {Chosen: 1, Correct: false}, {Chosen: 0, Correct: true}},
		Score:   2,
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testResult())
	if s.Title() != "Check Complete" {
		t.Errorf("Title = %q, want %q", s.Title(), "Check Complete")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testResult())
	view := s.View(80, 24)
	for _, want := range []string{"Hydrostatic Pressure", "Correct: 2", "67%"} {
		if !strings.Contains(view, want) {
			t.Errorf("summary view missing %q", want)
		}
	}
}

func TestResult_AccuracyEmpty(t *testing.T) {
	if got := (Result{}).Accuracy(); got != 0 {
		t.Errorf("empty accuracy = %v, want 0", got)
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New(testResult())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected command on Enter")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
}

func TestSummaryScreen_Navigation_Esc(t *testing.T) {
	s := New(testResult())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected command on Esc")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
}
