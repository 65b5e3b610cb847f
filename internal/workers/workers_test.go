// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

// recordingWorker appends "start:<id>" and "stop:<id>" to a shared log.
type recordingWorker struct {
	id  string
	log *[]string
}

func (r *recordingWorker) Start(context.Context) {
	*r.log = append(*r.log, "start:"+r.id)
}

func (r *recordingWorker) Stop() {
	*r.log = append(*r.log, "stop:"+r.id)
}

func TestWorkers_StartStopOrder(t *testing.T) {
	var log []string
	ws := New(
		&recordingWorker{id: "monitor", log: &log},
		&recordingWorker{id: "sync", log: &log},
	)

	ws.Start(context.Background())
	ws.Stop()

	assert.Equal(t, []string{"start:monitor", "start:sync", "stop:sync", "stop:monitor"}, log)
}

func TestWorkers_StartIsIdempotent(t *testing.T) {
	var log []string
	ws := New(&recordingWorker{id: "a", log: &log})

	ws.Start(context.Background())
	ws.Start(context.Background())
	ws.Stop()
	ws.Stop()

	assert.Equal(t, []string{"start:a", "stop:a"}, log)
}

func TestWorkers_StopWithoutStart(t *testing.T) {
	var log []string
	ws := New(&recordingWorker{id: "a", log: &log})

	ws.Stop()

	assert.Empty(t, log)
}

func TestWorkers_Empty(t *testing.T) {
	ws := New()

	assert.NotPanics(t, func() {
		ws.Start(context.Background())
		ws.Stop()
	})
}

func TestFunc(t *testing.T) {
	var started, stopped bool
	w := Func{
		StartFunc: func(context.Context) { started = true },
		StopFunc:  func() { stopped = true },
	}

	w.Start(context.Background())
	w.Stop()

	assert.True(t, started)
	assert.True(t, stopped)
	assert.NotPanics(t, func() {
		Func{}.Start(context.Background())
		Func{}.Stop()
	})
}
