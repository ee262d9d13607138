package stacks_test

import (
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"

	"go.llib.dev/exemplar/katas/stacks"
)

func TestDailyTemperatures(t *testing.T) {
	type TC struct {
		In  []int
		Out []int
	}
	testcase.TableTest(t, map[string]TC{
		"classic week":      {In: []int{73, 74, 75, 71, 69, 72, 76, 73}, Out: []int{1, 1, 4, 2, 1, 1, 0, 0}},
		"strictly rising":   {In: []int{30, 40, 50, 60}, Out: []int{1, 1, 1, 0}},
		"strictly falling":  {In: []int{60, 50, 40, 30}, Out: []int{0, 0, 0, 0}},
		"plateau then rise": {In: []int{30, 30, 31}, Out: []int{2, 1, 0}},
		"single day":        {In: []int{30}, Out: []int{0}},
		"empty input":       {In: nil, Out: nil},
	}, func(t *testcase.T, tc TC) {
		t.Must.Equal(tc.Out, stacks.DailyTemperatures(tc.In))
	})

	t.Run("agrees with the brute force answer", func(t *testing.T) {
		rnd := random.New(random.CryptoSeed{})
		rnd.Repeat(50, 100, func() {
			temps := make([]int, rnd.IntBetween(0, 15))
			for i := range temps {
				temps[i] = rnd.IntBetween(20, 40)
			}
			assert.Equal(t, bruteDailyTemperatures(temps), stacks.DailyTemperatures(temps),
				"input:", temps)
		})
	})
}

func TestNextGreaterElements(t *testing.T) {
	type TC struct {
		In  []int
		Out []int
	}
	testcase.TableTest(t, map[string]TC{
		"classic circular": {In: []int{1, 2, 1}, Out: []int{2, -1, 2}},
		"wrap around":      {In: []int{1, 2, 3, 4, 3}, Out: []int{2, 3, 4, -1, 4}},
		"all equal":        {In: []int{7, 7, 7}, Out: []int{-1, -1, -1}},
		"single element":   {In: []int{5}, Out: []int{-1}},
		"empty input":      {In: nil, Out: nil},
	}, func(t *testcase.T, tc TC) {
		t.Must.Equal(tc.Out, stacks.NextGreaterElements(tc.In))
	})

	t.Run("agrees with the brute force answer", func(t *testing.T) {
		rnd := random.New(random.CryptoSeed{})
		rnd.Repeat(50, 100, func() {
			nums := make([]int, rnd.IntBetween(1, 12))
			for i := range nums {
				nums[i] = rnd.IntBetween(-5, 5)
			}
			assert.Equal(t, bruteNextGreater(nums), stacks.NextGreaterElements(nums),
				"input:", nums)
		})
	})
}

func TestValidParentheses(t *testing.T) {
	type TC struct {
		In  string
		Out bool
	}
	testcase.TableTest(t, map[string]TC{
		"empty string":           {In: "", Out: true},
		"single pair":            {In: "()", Out: true},
		"nested mixture":         {In: "([{}])", Out: true},
		"sequence of pairs":      {In: "()[]{}", Out: true},
		"mismatched pair":        {In: "(]", Out: false},
		"interleaved brackets":   {In: "([)]", Out: false},
		"unclosed opener":        {In: "(", Out: false},
		"dangling closer":        {In: ")", Out: false},
		"non bracket characters": {In: "(a)", Out: false},
	}, func(t *testcase.T, tc TC) {
		t.Must.Equal(tc.Out, stacks.ValidParentheses(tc.In))
	})
}

func bruteDailyTemperatures(temperatures []int) []int {
	if len(temperatures) == 0 {
		return nil
	}
	waits := make([]int, len(temperatures))
	for i, temp := range temperatures {
		for j := i + 1; j < len(temperatures); j++ {
			if temp < temperatures[j] {
				waits[i] = j - i
				break
			}
		}
	}
	return waits
}

func bruteNextGreater(nums []int) []int {
	if len(nums) == 0 {
		return nil
	}
	greater := make([]int, len(nums))
	for i, n := range nums {
		greater[i] = -1
		for d := 1; d < len(nums); d++ {
			if n < nums[(i+d)%len(nums)] {
				greater[i] = nums[(i+d)%len(nums)]
				break
			}
		}
	}
	return greater
}
