// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package job runs background maintenance tasks of the API server, such as pruning the
// forecast cache.
package job

import (
	"context"
	"sync/atomic"
	"time"
)

// Job is a task that runs at a fixed interval and never overlaps with itself. A tick that
// fires while the previous run is still busy is skipped.
type Job struct {
	name     string
	interval time.Duration
	task     func(context.Context)

	runs    atomic.Int64
	skipped atomic.Int64
}

// New creates a new Job with the given name, interval and task.
func New(name string, interval time.Duration, task func(context.Context)) *Job {
	return &Job{
		name:     name,
		interval: interval,
		task:     task,
	}
}

func (j *Job) Name() string {
	return j.name
}

// Runs returns the number of started runs.
func (j *Job) Runs() int64 {
	return j.runs.Load()
}

// Skipped returns the number of ticks that were dropped because a run was still in progress.
func (j *Job) Skipped() int64 {
	return j.skipped.Load()
}

// Start executes the job until the context is canceled.
func (j *Job) Start(ctx context.Context) {
	if j.task == nil || j.interval <= 0 {
		return
	}

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()
	busy := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			select {
			case busy <- struct{}{}:
				j.runs.Add(1)
				go func() {
					defer func() { <-busy }()
					j.task(ctx)
				}()
			default:
				j.skipped.Add(1)
			}
		}
	}
}
