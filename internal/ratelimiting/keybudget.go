package ratelimiting

import (
	"context"
	"slices"
	"sync"
	"time"
)

type KeyBudgetLimiter interface {
	// Limit runs operation within the budget. Returns false without running
	// it when the context is cancelled, or when waiting for a slot plus
	// maxOperationTime would overshoot the context deadline.
	Limit(ctx context.Context, maxOperationTime time.Duration, operation func(ctx context.Context)) bool
}

// keyBudgetLimiter enforces a shared request budget against the upstream
// API key: at most limit requests may finish within any window. Callers
// block until a slot frees up, or bail out when their context deadline
// cannot be met.
type keyBudgetLimiter struct {
	limit     int
	window    time.Duration
	nowFunc   func() time.Time
	afterFunc func(time.Duration) <-chan time.Time

	availableSlots   chan struct{}
	finishedRequests []time.Time
	mutex            sync.Mutex
}

func NewKeyBudgetLimiter(
	limit int,
	window time.Duration,
	nowFunc func() time.Time,
	afterFunc func(time.Duration) <-chan time.Time,
) KeyBudgetLimiter {
	availableSlots := make(chan struct{}, limit)
	for i := 0; i < limit; i++ {
		availableSlots <- struct{}{}
	}

	// No finished requests within the window -> no waiting for the first requests
	finishedRequests := make([]time.Time, limit)
	veryOldTime := nowFunc().Add(-window)
	for i := 0; i < limit; i++ {
		finishedRequests[i] = veryOldTime
	}

	return &keyBudgetLimiter{
		limit:     limit,
		window:    window,
		nowFunc:   nowFunc,
		afterFunc: afterFunc,

		availableSlots:   availableSlots,
		finishedRequests: finishedRequests,
		mutex:            sync.Mutex{},
	}
}

func (l *keyBudgetLimiter) Limit(ctx context.Context, maxOperationTime time.Duration, operation func(ctx context.Context)) bool {
	// Make sure there is data in the request history
	select {
	case <-l.availableSlots:
		// Make sure to return the slot when we are done
		defer func() {
			l.availableSlots <- struct{}{}
		}()
	case <-ctx.Done():
		return false
	}

	oldestRequest, ok := l.grabOldestFinishedRequest(ctx, maxOperationTime)
	if !ok {
		return false
	}
	// Since we grabbed a request, we need to put one back when we return.
	// If we return without running the operation, we reinsert the one we grabbed.
	requestToInsert := oldestRequest
	defer func() {
		l.insertFinishedRequest(requestToInsert)
	}()

	if wait := l.computeWait(oldestRequest); wait > 0 {
		select {
		case <-ctx.Done():
			return false
		case <-l.afterFunc(wait):
		}
	}

	operation(ctx)

	requestToInsert = l.nowFunc()
	return true
}

func (l *keyBudgetLimiter) computeWait(oldRequest time.Time) time.Duration {
	timeSinceRequest := l.nowFunc().Sub(oldRequest)
	return l.window - timeSinceRequest
}

func (l *keyBudgetLimiter) insertFinishedRequest(finishedRequest time.Time) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	i, _ := slices.BinarySearchFunc(l.finishedRequests, finishedRequest, func(a, b time.Time) int {
		return a.Compare(b)
	})
	l.finishedRequests = slices.Insert(l.finishedRequests, i, finishedRequest)
}

func (l *keyBudgetLimiter) grabOldestFinishedRequest(ctx context.Context, maxOperationTime time.Duration) (time.Time, bool) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	oldestRequest := l.finishedRequests[0]

	if deadline, ok := ctx.Deadline(); ok {
		maxDuration := l.computeWait(oldestRequest) + maxOperationTime
		if maxDuration > deadline.Sub(l.nowFunc()) {
			return time.Time{}, false
		}
	}

	// Remove and return the oldest request
	l.finishedRequests = l.finishedRequests[1:]
	return oldestRequest, true
}
