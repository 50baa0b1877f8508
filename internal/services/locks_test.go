package services

import (
	"sync"
	"testing"
	"time"
)

func TestItemLocksSerializeSameItem(t *testing.T) {
	locks := NewItemLocks()

	var counter int
	var wg sync.WaitGroup
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.Lock("item-1")
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	if counter != 200 {
		t.Errorf("counter = %d, want 200", counter)
	}
}

func TestItemLocksIndependentItems(t *testing.T) {
	locks := NewItemLocks()

	unlockA := locks.Lock("item-a")
	defer unlockA()

	acquired := make(chan struct{})
	go func() {
		unlockB := locks.Lock("item-b")
		defer unlockB()
		close(acquired)
	}()

	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("lock on a different item blocked")
	}
}
