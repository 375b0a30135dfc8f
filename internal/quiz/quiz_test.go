package quiz

import (
	"errors"
	"testing"
)

func sampleQuestions() []Question {
	return []Question{
		{Prompt: "Gradient of fresh water?", Options: []string{"0.433 psi/ft", "0.52 psi/ft", "1 psi/ft"}, CorrectIndex: 0},
		{Prompt: "What expands as gas rises?", Options: []string{"Pressure", "Volume"}, CorrectIndex: 1},
		{Prompt: "Unit of DLS?", Options: []string{"deg/100ft", "ft/min", "psi", "ppg"}, CorrectIndex: 0},
	}
}

func TestNew_Rejects(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrNoQuestions) {
		t.Fatalf("expected ErrNoQuestions, got %v", err)
	}

	bad := []Question{{Prompt: "x", Options: []string{"a", "b"}, CorrectIndex: 2}}
	if _, err := New(bad); err == nil {
		t.Fatal("expected error for out-of-range correct index")
	}

	single := []Question{{Prompt: "x", Options: []string{"a"}, CorrectIndex: 0}}
	if _, err := New(single); err == nil {
		t.Fatal("expected error for single option")
	}
}

func TestCheck_AllCorrect(t *testing.T) {
	c, err := New(sampleQuestions())
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	for _, pick := range []int{0, 1, 0} {
		if err := c.Select(pick); err != nil {
			t.Fatalf("select: %v", err)
		}
		ok, err := c.Verify()
		if err != nil || !ok {
			t.Fatalf("verify = %v, %v; want true, nil", ok, err)
		}
		if err := c.Next(); err != nil {
			t.Fatalf("next: %v", err)
		}
	}

	if !c.Done() {
		t.Fatal("expected check to be done")
	}
	if c.Score() != 3 {
		t.Errorf("score = %d, want 3", c.Score())
	}
}

func TestCheck_LastCorrectCountedOnce(t *testing.T) {
	c, _ := New(sampleQuestions())
	_ = c.Select(1)
	_, _ = c.Verify()
	_ = c.Next()
	_ = c.Select(1)
	_, _ = c.Verify()
	_ = c.Next()
	_ = c.Select(0)
	_, _ = c.Verify()
	_, _ = c.Verify()
	_ = c.Next()

	if c.Score() != 2 {
		t.Errorf("score = %d, want 2", c.Score())
	}
	if len(c.Answers()) != 3 {
		t.Errorf("answers = %d, want 3", len(c.Answers()))
	}
}

func TestCheck_OrderEnforced(t *testing.T) {
	c, _ := New(sampleQuestions())

	if _, err := c.Verify(); !errors.Is(err, ErrNoSelection) {
		t.Errorf("verify without selection: got %v", err)
	}
	if err := c.Next(); !errors.Is(err, ErrNotVerified) {
		t.Errorf("next before verify: got %v", err)
	}
	if err := c.Select(7); !errors.Is(err, ErrOptionOutside) {
		t.Errorf("select out of range: got %v", err)
	}

	_ = c.Select(2)
	_, _ = c.Verify()
	if err := c.Select(0); err != nil {
		t.Fatalf("select after verify: %v", err)
	}
	if c.Selected() != 2 {
		t.Errorf("selection changed after verify: %d", c.Selected())
	}

	_ = c.Next()
	if c.Selected() != -1 || c.Verified() {
		t.Error("next question should start unselected")
	}
	if c.Index() != 1 {
		t.Errorf("index = %d, want 1", c.Index())
	}
}

func TestCheck_DoneRejectsInput(t *testing.T) {
	c, _ := New(sampleQuestions()[:1])
	_ = c.Select(0)
	_, _ = c.Verify()
	_ = c.Next()

	if err := c.Select(0); !errors.Is(err, ErrAlreadyDone) {
		t.Errorf("select after done: got %v", err)
	}
	if err := c.Next(); !errors.Is(err, ErrAlreadyDone) {
		t.Errorf("next after done: got %v", err)
	}
}
