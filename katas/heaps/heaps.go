// Package heaps collects classic exercises around priority queues:
// task scheduling with cooldown, a streaming k-th largest tracker,
// and merging sorted linked lists through container/heap.
package heaps

import (
	"container/heap"
	"fmt"
)

// TaskScheduler returns the number of time slots needed to run every task,
// where identical tasks must stay at least cooldown slots apart and idle
// slots count too. Each byte of tasks names one task kind.
func TaskScheduler(tasks string, cooldown int) int {
	if len(tasks) == 0 {
		return 0
	}
	var (
		counts   [256]int
		maxCount int
	)
	for i := 0; i < len(tasks); i++ {
		counts[tasks[i]]++
		maxCount = max(maxCount, counts[tasks[i]])
	}
	var tiedForMax int
	for _, count := range counts {
		if count == maxCount {
			tiedForMax++
		}
	}
	// The most frequent task dictates the frame layout, the final frame
	// holds every task tied for the maximum count.
	return max(len(tasks), (maxCount-1)*(cooldown+1)+tiedForMax)
}

// KthLargest tracks the k-th largest value of a stream of integers.
type KthLargest struct {
	k    int
	heap intHeap // min-heap holding the k largest values seen so far
}

func NewKthLargest(k int, nums []int) (*KthLargest, error) {
	if k <= 0 {
		return nil, fmt.Errorf("heaps: k must be positive, got %d", k)
	}
	kl := &KthLargest{k: k}
	for _, n := range nums {
		kl.Add(n)
	}
	return kl, nil
}

// Add feeds the next value of the stream. It returns the k-th largest value
// seen so far; ok is false while the stream holds fewer than k values.
func (kl *KthLargest) Add(val int) (kth int, ok bool) {
	heap.Push(&kl.heap, val)
	if kl.k < kl.heap.Len() {
		heap.Pop(&kl.heap)
	}
	if kl.heap.Len() < kl.k {
		return 0, false
	}
	return kl.heap[0], true
}

type intHeap []int

func (h intHeap) Len() int           { return len(h) }
func (h intHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h intHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *intHeap) Push(x any) { *h = append(*h, x.(int)) }

func (h *intHeap) Pop() any {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]
	return v
}

type ListNode struct {
	Val  int
	Next *ListNode
}

// NewList builds a linked list out of vals and returns its head.
func NewList(vals ...int) *ListNode {
	var head, tail *ListNode
	for _, v := range vals {
		node := &ListNode{Val: v}
		if head == nil {
			head = node
		} else {
			tail.Next = node
		}
		tail = node
	}
	return head
}

// Values collects the list values from l onward. A nil list yields nil.
func (l *ListNode) Values() []int {
	var vals []int
	for node := l; node != nil; node = node.Next {
		vals = append(vals, node.Val)
	}
	return vals
}

// MergeKLists merges sorted linked lists into one sorted list,
// driven by a min-heap over the current head of every list.
func MergeKLists(lists []*ListNode) *ListNode {
	var h nodeHeap
	for _, l := range lists {
		if l != nil {
			h = append(h, l)
		}
	}
	heap.Init(&h)
	var head, tail *ListNode
	for 0 < h.Len() {
		node := heap.Pop(&h).(*ListNode)
		if node.Next != nil {
			heap.Push(&h, node.Next)
		}
		node.Next = nil
		if head == nil {
			head = node
		} else {
			tail.Next = node
		}
		tail = node
	}
	return head
}

type nodeHeap []*ListNode

func (h nodeHeap) Len() int           { return len(h) }
func (h nodeHeap) Less(i, j int) bool { return h[i].Val < h[j].Val }
func (h nodeHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *nodeHeap) Push(x any) { *h = append(*h, x.(*ListNode)) }

func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]
	return v
}
