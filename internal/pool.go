package internal

import (
	"sync"
	"sync/atomic"
)

const shardN = 16
const capa = 2048

var shardn uint32
var chans []chan func()
var start sync.Once

func startWorkers() {
	chans = make([]chan func(), shardN)
	for i := range chans {
		ch := make(chan func(), capa)
		chans[i] = ch
		go worker(ch)
	}
}

func worker(ch chan func()) {
	for f := range ch {
		f()
	}
}

// Go runs f on one of the shared workers.
// Workers are started on first call.
func Go(f func()) {
	start.Do(startWorkers)
	i := atomic.AddUint32(&shardn, 1)
	select {
	case chans[i%shardN] <- f:
	default:
		// Round-robin shard is full: wait on two pseudo-random shards and take
		// whichever frees first, so one slow worker doesn't stall the caller.
		a, b := fallbackShards(i)
		select {
		case chans[a] <- f:
		case chans[b] <- f:
		}
	}
}

// fallbackShards derives two shard indexes from counter value with two steps of
// a multiplicative mixer.
func fallbackShards(i uint32) (uint32, uint32) {
	i = i*0x12345 + 1
	a := i ^ i>>16
	i = i*0x12345 + 1
	b := i ^ i>>16
	return a % shardN, b % shardN
}

// Wait runs every task on shared workers and waits for all of them.
func Wait(tasks ...func()) {
	var wg sync.WaitGroup
	wg.Add(len(tasks))
	for _, task := range tasks {
		task := task
		Go(func() {
			defer wg.Done()
			task()
		})
	}
	wg.Wait()
}
