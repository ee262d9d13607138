// Package slidingwindow collects classic sliding window exercises
// over strings and integer slices.
package slidingwindow

// LongestUniqueSubstring returns the length of the longest substring of s
// without repeating bytes.
func LongestUniqueSubstring(s string) int {
	var (
		last    = make(map[byte]int) // last index each byte was seen at
		start   int
		longest int
	)
	for i := 0; i < len(s); i++ {
		if seen, ok := last[s[i]]; ok && start <= seen {
			start = seen + 1
		}
		last[s[i]] = i
		longest = max(longest, i-start+1)
	}
	return longest
}

// MinSubArrayLen returns the length of the shortest contiguous subarray of
// nums whose sum reaches target, or 0 when no such subarray exists.
// The values of nums are expected to be non-negative.
func MinSubArrayLen(target int, nums []int) int {
	var (
		sum      int
		start    int
		shortest = len(nums) + 1
	)
	for i, n := range nums {
		sum += n
		for target <= sum {
			shortest = min(shortest, i-start+1)
			sum -= nums[start]
			start++
		}
	}
	if shortest == len(nums)+1 {
		return 0
	}
	return shortest
}

// MaxSlidingWindow returns the maximum of every k sized window of nums,
// left to right. It returns nil when k is not positive or when nums is
// shorter than k.
func MaxSlidingWindow(nums []int, k int) []int {
	if k <= 0 || len(nums) < k {
		return nil
	}
	var (
		deque []int // indexes into nums, their values kept in decreasing order
		maxes = make([]int, 0, len(nums)-k+1)
	)
	for i, n := range nums {
		for 0 < len(deque) && nums[deque[len(deque)-1]] <= n {
			deque = deque[:len(deque)-1]
		}
		deque = append(deque, i)
		if deque[0] == i-k {
			deque = deque[1:]
		}
		if k-1 <= i {
			maxes = append(maxes, nums[deque[0]])
		}
	}
	return maxes
}
