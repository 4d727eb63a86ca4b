/*
Copyright (c) 2026 the shaperctl authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

  http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package interactive implements the double confirmation gate that guards destructive operations.
package interactive

import (
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/pkg/errors"
)

// State is the position of a confirmation gate in its life cycle.
type State int

const (
	StateIdle State = iota
	StateOffered
	StateConfirmedOnce
	StateConfirmedTwice
	StateExecuting
	StateDone
	StateAborted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateOffered:
		return "offered"
	case StateConfirmedOnce:
		return "confirmed once"
	case StateConfirmedTwice:
		return "confirmed twice"
	case StateExecuting:
		return "executing"
	case StateDone:
		return "done"
	case StateAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Asker presents one prompt to the user and returns the raw answer.
type Asker func(message string) (string, error)

// affirmatives is the accepted vocabulary, matched after folding case and trimming space.
var affirmatives = map[string]bool{
	"y":   true,
	"ye":  true,
	"yes": true,
}

// Affirmative reports whether the answer counts as a yes.
func Affirmative(answer string) bool {
	return affirmatives[strings.ToLower(strings.TrimSpace(answer))]
}

// Gate walks one destructive operation through the confirmation states. Any non affirmative
// answer at either prompt aborts the gate, and an aborted or finished gate can't be reused:
// create a new one for every operation offered.
type Gate struct {
	ask   Asker
	state State
}

// NewGate creates a gate that uses the given asker for its prompts. A nil asker prompts on the
// terminal.
func NewGate(ask Asker) *Gate {
	if ask == nil {
		ask = Ask
	}
	return &Gate{
		ask:   ask,
		state: StateIdle,
	}
}

// State returns the current state of the gate.
func (g *Gate) State() State {
	return g.state
}

// Confirm asks the two questions in sequence. It returns true only when both answers are
// affirmative. Any other answer aborts the gate with no side effects, returning false and no
// error.
func (g *Gate) Confirm(first, second string) (bool, error) {
	if g.state != StateIdle {
		return false, errors.Errorf("gate was already used, state is '%s'", g.state)
	}
	g.state = StateOffered
	answer, err := g.ask(first)
	if err != nil {
		g.state = StateAborted
		return false, err
	}
	if !Affirmative(answer) {
		g.state = StateAborted
		return false, nil
	}
	g.state = StateConfirmedOnce
	answer, err = g.ask(second)
	if err != nil {
		g.state = StateAborted
		return false, err
	}
	if !Affirmative(answer) {
		g.state = StateAborted
		return false, nil
	}
	g.state = StateConfirmedTwice
	return true, nil
}

// Execute runs the operation guarded by the gate. It refuses to run anything unless both
// confirmations were given.
func (g *Gate) Execute(operation func() error) error {
	if g.state != StateConfirmedTwice {
		return errors.Errorf("operation isn't confirmed, state is '%s'", g.state)
	}
	g.state = StateExecuting
	err := operation()
	g.state = StateDone
	return err
}

// Ask is the default asker, prompting on the terminal.
func Ask(message string) (string, error) {
	var answer string
	err := survey.AskOne(&survey.Input{Message: message}, &answer)
	if err != nil {
		return "", err
	}
	return answer, nil
}
