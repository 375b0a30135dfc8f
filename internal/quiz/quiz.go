// Package quiz runs a lesson knowledge check: pick an option, verify it,
// move to the next question, and count correct answers.
package quiz

import (
	"errors"
	"fmt"
)

var (
	ErrNoQuestions   = errors.New("quiz has no questions")
	ErrNoSelection   = errors.New("no option selected")
	ErrNotVerified   = errors.New("answer not verified yet")
	ErrAlreadyDone   = errors.New("quiz already finished")
	ErrOptionOutside = errors.New("option out of range")
)

// Question is one multiple-choice question.
type Question struct {
	Prompt       string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
	Explanation  string   `json:"explanation"`
}

// Validate checks that the question is answerable.
func (q Question) Validate() error {
	if q.Prompt == "" {
		return errors.New("empty question text")
	}
	if len(q.Options) < 2 {
		return fmt.Errorf("need at least 2 options, got %d", len(q.Options))
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return fmt.Errorf("correct index %d outside %d options", q.CorrectIndex, len(q.Options))
	}
	return nil
}

// Answer records what the learner picked for one question.
type Answer struct {
	Chosen  int
	Correct bool
}

// Check is the state of a knowledge check in progress.
type Check struct {
	questions []Question
	answers   []Answer
	current   int
	selected  int
	verified  bool
	done      bool
}

// New starts a check over questions.
func New(questions []Question) (*Check, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	for i, q := range questions {
		if err := q.Validate(); err != nil {
			return nil, fmt.Errorf("question %d: %w", i+1, err)
		}
	}
	return &Check{questions: questions, selected: -1}, nil
}

func (c *Check) Len() int              { return len(c.questions) }
func (c *Check) Index() int            { return c.current }
func (c *Check) Current() Question     { return c.questions[c.current] }
func (c *Check) Selected() int         { return c.selected }
func (c *Check) Verified() bool        { return c.verified }
func (c *Check) Done() bool            { return c.done }
func (c *Check) Answers() []Answer     { return append([]Answer(nil), c.answers...) }
func (c *Check) IsLast() bool          { return c.current == len(c.questions)-1 }
func (c *Check) Questions() []Question { return c.questions }

// Select highlights option i. Selection is locked once verified.
func (c *Check) Select(i int) error {
	if c.done {
		return ErrAlreadyDone
	}
	if c.verified {
		return nil
	}
	if i < 0 || i >= len(c.Current().Options) {
		return ErrOptionOutside
	}
	c.selected = i
	return nil
}

// Verify locks in the selection and reports whether it was right. A second
// Verify on the same question returns the same result without rescoring.
func (c *Check) Verify() (bool, error) {
	if c.done {
		return false, ErrAlreadyDone
	}
	if c.selected < 0 {
		return false, ErrNoSelection
	}
	if c.verified {
		return c.answers[c.current].Correct, nil
	}
	correct := c.selected == c.Current().CorrectIndex
	c.answers = append(c.answers, Answer{Chosen: c.selected, Correct: correct})
	c.verified = true
	return correct, nil
}

// Next moves past a verified question. After the last one the check is done.
func (c *Check) Next() error {
	if c.done {
		return ErrAlreadyDone
	}
	if !c.verified {
		return ErrNotVerified
	}
	if c.IsLast() {
		c.done = true
		return nil
	}
	c.current++
	c.selected = -1
	c.verified = false
	return nil
}

// Score returns the number of correct answers so far.
func (c *Check) Score() int {
	n := 0
	for _, a := range c.answers {
		if a.Correct {
			n++
		}
	}
	return n
}
