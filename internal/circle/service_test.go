// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gyrus Contributors

package circle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gyrus-dev/gyrus/internal/circle"
	"github.com/gyrus-dev/gyrus/internal/memory"
)

func TestService_DefaultsToLocal(t *testing.T) {
	s := circle.NewService("", nil)
	assert.Equal(t, memory.DefaultCircle, s.Get())
}

func TestService_InitialCircle(t *testing.T) {
	s := circle.NewService("work", nil)
	assert.Equal(t, "work", s.Get())
}

func TestService_SetSwitchesAndNotifies(t *testing.T) {
	s := circle.NewService("", nil)

	var got []string
	s.Watch(func(circleID string) { got = append(got, circleID) })

	s.Set("work")
	assert.Equal(t, "work", s.Get())
	require.Equal(t, []string{"work"}, got)
}

func TestService_SetSameValueIsNoOp(t *testing.T) {
	s := circle.NewService("work", nil)

	fired := 0
	s.Watch(func(string) { fired++ })

	s.Set("work")
	assert.Equal(t, 0, fired, "switching to the current circle must not notify")
}

func TestService_SetEmptyFallsBackToDefault(t *testing.T) {
	s := circle.NewService("work", nil)
	s.Set("")
	assert.Equal(t, memory.DefaultCircle, s.Get())
}

func TestService_KnownAccumulates(t *testing.T) {
	s := circle.NewService("", nil)
	s.Set("work")
	s.Set("home")
	s.Set("work")

	ids := map[string]bool{}
	for _, c := range s.Known() {
		ids[c.ID] = true
	}
	assert.Equal(t, map[string]bool{memory.DefaultCircle: true, "work": true, "home": true}, ids)
}

func TestService_MultipleWatchers(t *testing.T) {
	s := circle.NewService("", nil)

	var a, b string
	s.Watch(func(id string) { a = id })
	s.Watch(func(id string) { b = id })

	s.Set("work")
	assert.Equal(t, "work", a)
	assert.Equal(t, "work", b)
}
