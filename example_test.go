// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package mpsq_test

import (
	"context"
	"fmt"
	"sync"

	"github.com/petenewcomb/mpsq-go"
)

// "Hello world" example: one producer goroutine, one consumer draining the
// queue as a lazy sequence.
func Example() {
	sender, receiver := mpsq.New[string]()
	defer receiver.Close()

	go func() {
		defer sender.Close()
		sender.Send("Hello")
		sender.Send("world!")
	}()

	for s := range receiver.Values(context.Background()) {
		fmt.Println(s)
	}
	// Output:
	// Hello
	// world!
}

// Fan-in example: ten producers, each sending its own ordered burst. The
// consumer sees some interleaving of the bursts and reaches end of stream
// once every clone has been closed.
func Example_fanIn() {
	sender, receiver := mpsq.New[[2]int]()
	defer receiver.Close()

	var wg sync.WaitGroup
	for i := range 10 {
		s := sender.Clone()
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer s.Close()
			for j := range 10 {
				if _, err := s.Send([2]int{i, j}); err != nil {
					return
				}
			}
		}()
	}
	// Release the original handle so that the clones are the only
	// outstanding shares.
	sender.Close()
	defer wg.Wait()

	count := 0
	var sum int
	for v := range receiver.Values(context.Background()) {
		count++
		sum += v[0]*10 + v[1]
	}
	fmt.Println(count, sum)
	// Output:
	// 100 4950
}

// Lag detection example: Send reports the buffer length after each insert,
// which a producer can use to notice a consumer falling behind.
func ExampleSender_Send() {
	sender, receiver := mpsq.New[int]()
	defer receiver.Close()
	defer sender.Close()

	for i := range 3 {
		pos, _ := sender.Send(i)
		fmt.Println("queued at position", pos)
	}
	// Output:
	// queued at position 1
	// queued at position 2
	// queued at position 3
}

// Sink example: the producing end handed off as a push contract with
// explicit close.
func ExampleSender_IntoSink() {
	sender, receiver := mpsq.New[string]()
	defer receiver.Close()

	sink := sender.IntoSink()
	if sink.Ready() == nil {
		sink.Send("one")
		sink.Send("two")
	}
	sink.Close()
	sink.Close() // closing twice is a no-op

	for s := range receiver.Values(context.Background()) {
		fmt.Println(s)
	}
	// Output:
	// one
	// two
}
