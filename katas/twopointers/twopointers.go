// Package twopointers collects classic array exercises solved with
// converging index pairs over sorted or spatial input.
package twopointers

import "sort"

// TwoSumSorted returns the indexes of the two values in the ascending slice
// nums that add up to target. When no such pair exists, ok is false.
func TwoSumSorted(nums []int, target int) (i, j int, ok bool) {
	i, j = 0, len(nums)-1
	for i < j {
		sum := nums[i] + nums[j]
		switch {
		case sum == target:
			return i, j, true
		case sum < target:
			i++
		default:
			j--
		}
	}
	return 0, 0, false
}

// ThreeSum returns every unique triplet of values from nums that sums to zero.
// Triplets are reported in ascending order, and the result is free of duplicates.
func ThreeSum(nums []int) [][3]int {
	if len(nums) < 3 {
		return nil
	}
	sorted := append([]int(nil), nums...)
	sort.Ints(sorted)

	var triplets [][3]int
	for first := 0; first < len(sorted)-2; first++ {
		if 0 < sorted[first] {
			break // every remaining value is positive, no zero sum possible
		}
		if 0 < first && sorted[first] == sorted[first-1] {
			continue
		}
		lo, hi := first+1, len(sorted)-1
		for lo < hi {
			sum := sorted[first] + sorted[lo] + sorted[hi]
			switch {
			case sum < 0:
				lo++
			case 0 < sum:
				hi--
			default:
				triplets = append(triplets, [3]int{sorted[first], sorted[lo], sorted[hi]})
				for lo < hi && sorted[lo] == sorted[lo+1] {
					lo++
				}
				for lo < hi && sorted[hi] == sorted[hi-1] {
					hi--
				}
				lo++
				hi--
			}
		}
	}
	return triplets
}

// ContainerWithMostWater returns the largest rectangular area that fits
// between two of the given vertical line heights and the x axis.
func ContainerWithMostWater(heights []int) int {
	var (
		area int
		lo   = 0
		hi   = len(heights) - 1
	)
	for lo < hi {
		height := min(heights[lo], heights[hi])
		area = max(area, height*(hi-lo))
		// the shorter side bounds the area, only moving it can improve
		if heights[lo] < heights[hi] {
			lo++
		} else {
			hi--
		}
	}
	return area
}
