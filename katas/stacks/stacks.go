// Package stacks collects classic stack exercises,
// monotonic index stacks in particular.
package stacks

// DailyTemperatures returns, for every day, how many days to wait until a
// warmer temperature, 0 when no warmer day follows.
func DailyTemperatures(temperatures []int) []int {
	if len(temperatures) == 0 {
		return nil
	}
	var (
		waits = make([]int, len(temperatures))
		stack []int // indexes of days still waiting for a warmer one
	)
	for i, temp := range temperatures {
		for 0 < len(stack) && temperatures[stack[len(stack)-1]] < temp {
			day := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			waits[day] = i - day
		}
		stack = append(stack, i)
	}
	return waits
}

// NextGreaterElements returns for every element its next greater element,
// scanning forward and wrapping around circularly, -1 when there is none.
func NextGreaterElements(nums []int) []int {
	if len(nums) == 0 {
		return nil
	}
	greater := make([]int, len(nums))
	for i := range greater {
		greater[i] = -1
	}
	var stack []int
	for i := 0; i < 2*len(nums); i++ {
		n := nums[i%len(nums)]
		for 0 < len(stack) && nums[stack[len(stack)-1]] < n {
			greater[stack[len(stack)-1]] = n
			stack = stack[:len(stack)-1]
		}
		if i < len(nums) {
			stack = append(stack, i)
		}
	}
	return greater
}

// ValidParentheses tells whether every bracket of s is closed by the matching
// bracket type in the right order. Characters other than ()[]{} make the
// input invalid.
func ValidParentheses(s string) bool {
	pairs := map[byte]byte{')': '(', ']': '[', '}': '{'}
	var stack []byte
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '(', '[', '{':
			stack = append(stack, c)
		case ')', ']', '}':
			if len(stack) == 0 || stack[len(stack)-1] != pairs[c] {
				return false
			}
			stack = stack[:len(stack)-1]
		default:
			return false
		}
	}
	return len(stack) == 0
}
