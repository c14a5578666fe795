package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntentTransitions(t *testing.T) {
	want := map[Intent]map[Event]Intent{
		Unset: {
			OutputEdited:     Explicit,
			OutputBrowsed:    Explicit,
			OutputCleared:    Unset,
			SourceEdited:     Unset,
			DocumentReloaded: Unset,
			DefaultDeclared:  Auto,
		},
		Auto: {
			OutputEdited:     Explicit,
			OutputBrowsed:    Explicit,
			OutputCleared:    Unset,
			SourceEdited:     Unset,
			DocumentReloaded: Unset,
			DefaultDeclared:  Auto,
		},
		Explicit: {
			OutputEdited:     Explicit,
			OutputBrowsed:    Explicit,
			OutputCleared:    Unset,
			SourceEdited:     Unset,
			DocumentReloaded: Unset,
			DefaultDeclared:  Explicit,
		},
	}

	for _, from := range []Intent{Unset, Auto, Explicit} {
		for _, e := range Events() {
			t.Run(from.String()+"/"+e.String(), func(t *testing.T) {
				assert.Equal(t, want[from][e], from.Next(e))
			})
		}
	}
}

func TestIntentSequence(t *testing.T) {
	i := Unset
	i = i.Next(OutputEdited)
	assert.Equal(t, Explicit, i, "typing in the output field makes it explicit")

	i = i.Next(SourceEdited)
	assert.Equal(t, Unset, i, "editing the stylesheet forgets the output choice")

	i = i.Next(DefaultDeclared)
	assert.Equal(t, Auto, i)
	assert.False(t, i.IsExplicit())

	i = i.Next(DocumentReloaded)
	assert.Equal(t, Unset, i)
}

func TestUnknownTransitionPanics(t *testing.T) {
	assert.Panics(t, func() { Unset.Next(Event(99)) })
	assert.Panics(t, func() { Intent(42).Next(DefaultDeclared) })
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "explicit", Explicit.String())
	assert.Equal(t, "Intent(7)", Intent(7).String())
	assert.Equal(t, "document-reloaded", DocumentReloaded.String())
	assert.Equal(t, "Event(9)", Event(9).String())
}
