package knowledgecheck

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/welltegra/welllab/internal/course"
	"github.com/welltegra/welllab/internal/quiz"
	"github.com/welltegra/welllab/internal/router"
	"github.com/welltegra/welllab/internal/screen"
	"github.com/welltegra/welllab/internal/screens/summary"
)

var testLesson = course.Lesson{ID: "hydrostatics", Title: "Hydrostatic Pressure"}

func testQuestions() []quiz.Question {
	return []quiz.Question{
		{Prompt: "Which depth sets hydrostatic pressure?", Options: []string{"MD", "TVD", "Bit depth"}, CorrectIndex: 1, Explanation: "Only vertical height counts."},
		{Prompt: "1 SG in ppg?", Options: []string{"8.33", "10"}, CorrectIndex: 0},
	}
}

var (
	down  = tea.KeyPressMsg{Code: tea.KeyDown}
	enter = tea.KeyPressMsg{Code: tea.KeyEnter}
)

func TestNewRejectsMalformed(t *testing.T) {
	_, err := New(testLesson, []quiz.Question{{Prompt: "?", Options: []string{"only"}}})
	if err == nil {
		t.Fatal("expected error for a one-option question")
	}
	if _, err := New(testLesson, nil); !errors.Is(err, quiz.ErrNoQuestions) {
		t.Errorf("err = %v, want ErrNoQuestions", err)
	}
}

func TestSelectVerifyNext(t *testing.T) {
	s, err := New(testLesson, testQuestions())
	if err != nil {
		t.Fatal(err)
	}

	s.Update(down)
	if s.Check().Selected() != 1 {
		t.Fatalf("selected = %d, want 1", s.Check().Selected())
	}
	s.Update(enter)
	if !s.Check().Verified() {
		t.Fatal("enter should verify")
	}

	// Selection is locked after verifying.
	s.Update(down)
	if s.Check().Selected() != 1 {
		t.Error("selection should not move after verify")
	}

	s.Update(enter)
	if s.Check().Index() != 1 || s.Check().Verified() {
		t.Fatal("enter after verify should advance")
	}
	if s.Check().Selected() != 0 {
		t.Error("new question should start on the first option")
	}
}

func TestFinishEmitsCompletion(t *testing.T) {
	s, _ := New(testLesson, testQuestions())

	s.Update(down)
	s.Update(enter) // verify q1 (correct)
	s.Update(enter) // next
	s.Update(down)
	s.Update(enter) // verify q2 (wrong)
	_, cmd := s.Update(enter)
	if cmd == nil {
		t.Fatal("finishing should produce a command")
	}
	if !s.Check().Done() {
		t.Fatal("check should be done")
	}

	batch, ok := cmd().(tea.BatchMsg)
	if !ok {
		t.Fatalf("expected BatchMsg, got %T", cmd())
	}
	var gotDone, gotReplace bool
	for _, c := range batch {
		switch m := c().(type) {
		case screen.LessonCompletedMsg:
			gotDone = true
			if m.LessonID != "hydrostatics" || m.Score != 1 {
				t.Errorf("completed = %+v", m)
			}
		case router.ReplaceScreenMsg:
			gotReplace = true
			if _, ok := m.Screen.(*summary.SummaryScreen); !ok {
				t.Errorf("replace target = %T", m.Screen)
			}
		}
	}
	if !gotDone || !gotReplace {
		t.Errorf("done=%v replace=%v", gotDone, gotReplace)
	}

	if _, cmd := s.Update(enter); cmd != nil {
		t.Error("a finished check should ignore input")
	}
}

func TestViewShowsExplanationAfterVerify(t *testing.T) {
	s, _ := New(testLesson, testQuestions())
	s.Update(down)
	s.Update(enter)
	v := s.View(100, 30)
	for _, want := range []string{"Correct!", "Only vertical height counts.", "question 1 of 2"} {
		if !strings.Contains(v, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
