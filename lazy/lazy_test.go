package lazy

import (
	"sync"
	"testing"
)

func TestThunkDoesNotRunEarly(t *testing.T) {
	ran := false
	th := Delay(func() int {
		ran = true
		return 42
	})
	if ran {
		t.Error("expected computation to wait for Force, ran at Delay")
	}
	if v := th.Force(); v != 42 {
		t.Errorf("expected thunk to force to 42, is %d", v)
	}
	if !ran {
		t.Error("expected computation to have run after Force, didn't")
	}
}

func TestThunkMemoizes(t *testing.T) {
	runs := 0
	th := Delay(func() int {
		runs++
		return 7
	})
	for i := 0; i < 5; i++ {
		if v := th.Force(); v != 7 {
			t.Fatalf("expected every Force to return 7, is %d", v)
		}
	}
	if runs != 1 {
		t.Errorf("expected computation to run once, ran %d times", runs)
	}
}

func TestForcedThunk(t *testing.T) {
	th := Forced("hello")
	if v := th.Force(); v != "hello" {
		t.Errorf("expected pre-forced thunk to hold \"hello\", is %q", v)
	}
}

func TestConcurrentForceConverges(t *testing.T) {
	th := Delay(func() int {
		return 3 * 7
	})
	const goroutines = 32
	results := make([]int, goroutines)
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = th.Force()
		}(i)
	}
	wg.Wait()
	for i, v := range results {
		if v != 21 {
			t.Errorf("expected goroutine %d to observe 21, is %d", i, v)
		}
	}
}

func TestForceDropsComputation(t *testing.T) {
	th := Delay(func() int { return 1 })
	th.Force()
	if s := th.state.Load(); s.compute != nil {
		t.Error("expected forced thunk to drop its computation, didn't")
	}
}
