package executor

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type StatusTrackerTestSuite struct {
	suite.Suite

	tracker *StatusTracker
}

func TestRunStatusTrackerTestSuite(t *testing.T) {
	suite.Run(t, new(StatusTrackerTestSuite))
}

func (s *StatusTrackerTestSuite) SetupTest() {
	s.tracker = NewStatusTracker()
	s.tracker.cooldown = 10 * time.Millisecond
}

func (s *StatusTrackerTestSuite) Test_Status_UnknownIDIsIdle() {
	s.Equal(StatusIdle, s.tracker.Status("missing"))
}

func (s *StatusTrackerTestSuite) Test_Set_NotifiesSubscribers() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	statusChn := make(chan Status, 8)
	s.tracker.Subscribe(ctx, "tx-1", statusChn)

	s.tracker.Set("tx-1", StatusPreparing)
	s.tracker.Set("tx-1", StatusGettingQuote)

	s.Equal(StatusPreparing, <-statusChn)
	s.Equal(StatusGettingQuote, <-statusChn)
	s.Equal(StatusGettingQuote, s.tracker.Status("tx-1"))
}

func (s *StatusTrackerTestSuite) Test_Set_TerminalReturnsToIdleAfterCooldown() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	statusChn := make(chan Status, 8)
	s.tracker.Subscribe(ctx, "tx-1", statusChn)

	s.tracker.Set("tx-1", StatusSuccess)
	s.Equal(StatusSuccess, <-statusChn)

	select {
	case got := <-statusChn:
		s.Equal(StatusIdle, got)
	case <-time.After(time.Second):
		s.Fail("no idle transition after cooldown")
	}
	s.Equal(StatusIdle, s.tracker.Status("tx-1"))
}

func (s *StatusTrackerTestSuite) Test_Set_ReusedIDSkipsStaleReset() {
	s.tracker.Set("tx-1", StatusFailed)
	// a new flow reuses the id before the cooldown fires
	s.tracker.Set("tx-1", StatusPreparing)

	time.Sleep(50 * time.Millisecond)

	s.Equal(StatusPreparing, s.tracker.Status("tx-1"))
}

func (s *StatusTrackerTestSuite) Test_Subscribe_SlowSubscriberDoesNotBlock() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	statusChn := make(chan Status, 1)
	s.tracker.Subscribe(ctx, "tx-1", statusChn)

	// buffer fills after one transition; further sets must not block
	s.tracker.Set("tx-1", StatusPreparing)
	s.tracker.Set("tx-1", StatusGettingQuote)
	s.tracker.Set("tx-1", StatusExecuting)

	s.Equal(StatusPreparing, <-statusChn)
	s.Equal(StatusExecuting, s.tracker.Status("tx-1"))
}

func (s *StatusTrackerTestSuite) Test_Subscribe_ContextCancelRemovesSubscriber() {
	ctx, cancel := context.WithCancel(context.Background())

	statusChn := make(chan Status, 8)
	s.tracker.Subscribe(ctx, "tx-1", statusChn)
	cancel()

	s.Eventually(func() bool {
		s.tracker.mu.Lock()
		defer s.tracker.mu.Unlock()
		_, ok := s.tracker.subs["tx-1"]
		return !ok
	}, time.Second, 5*time.Millisecond)
}

func (s *StatusTrackerTestSuite) Test_Subscribe_LastSubscriberLeavingDropsEntry() {
	ctx1, cancel1 := context.WithCancel(context.Background())
	ctx2, cancel2 := context.WithCancel(context.Background())

	s.tracker.Subscribe(ctx1, "tx-1", make(chan Status, 1))
	s.tracker.Subscribe(ctx2, "tx-1", make(chan Status, 1))

	cancel1()
	s.Eventually(func() bool {
		s.tracker.mu.Lock()
		defer s.tracker.mu.Unlock()
		return len(s.tracker.subs["tx-1"]) == 1
	}, time.Second, 5*time.Millisecond)

	cancel2()
	s.Eventually(func() bool {
		s.tracker.mu.Lock()
		defer s.tracker.mu.Unlock()
		_, ok := s.tracker.subs["tx-1"]
		return !ok
	}, time.Second, 5*time.Millisecond)
}
