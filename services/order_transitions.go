package services

import (
	"time"

	"canteen/entity"
)

// TransitionDelays is the simulated kitchen timing: how long after
// placement each automatic step fires. Policy, not contract; configurable
// via env.
type TransitionDelays struct {
	Preparing      time.Duration
	Ready          time.Duration
	OutForDelivery time.Duration
}

func DefaultTransitionDelays() TransitionDelays {
	return TransitionDelays{
		Preparing:      30 * time.Second,
		Ready:          2 * time.Minute,
		OutForDelivery: 3 * time.Minute,
	}
}

// statusPredecessor defines the only state each automatic transition may
// fire from. A task whose order has moved on, or was cancelled, discards
// itself: never reverted, never skipped forward.
var statusPredecessor = map[entity.OrderStatus]entity.OrderStatus{
	entity.StatusPreparing:      entity.StatusPlaced,
	entity.StatusReady:          entity.StatusPreparing,
	entity.StatusOutForDelivery: entity.StatusReady,
}

// scheduleTransitions arms the kitchen steps for a freshly placed order.
// delivered is never scheduled; only MarkOrderReceived reaches it.
func (s *CartStore) scheduleTransitions(orderID string) {
	if s.sched == nil {
		return
	}
	steps := []struct {
		to    entity.OrderStatus
		after time.Duration
	}{
		{entity.StatusPreparing, s.delays.Preparing},
		{entity.StatusReady, s.delays.Ready},
		{entity.StatusOutForDelivery, s.delays.OutForDelivery},
	}
	for _, st := range steps {
		to := st.to
		s.sched.AfterFunc(st.after, func() {
			s.applyScheduled(orderID, to)
		})
	}
}

// applyScheduled advances orderID to `to` only while the order still sits
// in the defined predecessor state.
func (s *CartStore) applyScheduled(orderID string, to entity.OrderStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o := s.findOrderLocked(orderID)
	if o == nil {
		return
	}
	if o.Status != statusPredecessor[to] {
		return
	}
	o.Status = to
	s.persist()
}
