// Package binarytree collects classic binary tree exercises:
// level order traversal, right side view, depth measurement,
// and preorder serialization with explicit null markers.
//
// The level order helpers follow the compact array notation where
// absent children appear as nil markers, so the tree
//
//	    1
//	   / \
//	  2   3
//	   \   \
//	    5   4
//
// reads as [1 2 3 <nil> 5 <nil> 4].
package binarytree

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

type TreeNode struct {
	Val   int
	Left  *TreeNode
	Right *TreeNode
}

var ErrMalformed = errors.New("binarytree: malformed input")

// FromLevelOrder builds a tree from the compact level order notation.
// Accepted values are int and nil, anything else is reported as ErrMalformed.
func FromLevelOrder(values ...any) (*TreeNode, error) {
	if len(values) == 0 {
		return nil, nil
	}
	rootVal, ok, err := nodeValue(values[0])
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var (
		root  = &TreeNode{Val: rootVal}
		queue = []*TreeNode{root}
		index = 1
	)
	for 0 < len(queue) && index < len(values) {
		node := queue[0]
		queue = queue[1:]

		if index < len(values) {
			val, ok, err := nodeValue(values[index])
			index++
			if err != nil {
				return nil, err
			}
			if ok {
				node.Left = &TreeNode{Val: val}
				queue = append(queue, node.Left)
			}
		}
		if index < len(values) {
			val, ok, err := nodeValue(values[index])
			index++
			if err != nil {
				return nil, err
			}
			if ok {
				node.Right = &TreeNode{Val: val}
				queue = append(queue, node.Right)
			}
		}
	}
	return root, nil
}

func nodeValue(raw any) (int, bool, error) {
	switch val := raw.(type) {
	case nil:
		return 0, false, nil
	case int:
		return val, true, nil
	default:
		return 0, false, fmt.Errorf("%w: unsupported node value %T", ErrMalformed, raw)
	}
}

// ToLevelOrder renders the tree in the compact level order notation,
// with trailing nil markers trimmed.
func ToLevelOrder(root *TreeNode) []any {
	if root == nil {
		return nil
	}
	var (
		values []any
		queue  = []*TreeNode{root}
	)
	for 0 < len(queue) {
		node := queue[0]
		queue = queue[1:]
		if node == nil {
			values = append(values, nil)
			continue
		}
		values = append(values, node.Val)
		queue = append(queue, node.Left, node.Right)
	}
	for 0 < len(values) && values[len(values)-1] == nil {
		values = values[:len(values)-1]
	}
	return values
}

// LevelOrder returns the node values grouped by depth, top to bottom.
func LevelOrder(root *TreeNode) [][]int {
	if root == nil {
		return nil
	}
	var (
		levels [][]int
		queue  = []*TreeNode{root}
	)
	for 0 < len(queue) {
		var (
			level []int
			next  []*TreeNode
		)
		for _, node := range queue {
			level = append(level, node.Val)
			if node.Left != nil {
				next = append(next, node.Left)
			}
			if node.Right != nil {
				next = append(next, node.Right)
			}
		}
		levels = append(levels, level)
		queue = next
	}
	return levels
}

// RightSideView returns the values visible from the right side of the tree,
// ordered from top to bottom.
func RightSideView(root *TreeNode) []int {
	var view []int
	for _, level := range LevelOrder(root) {
		view = append(view, level[len(level)-1])
	}
	return view
}

// MaxDepth returns the number of nodes along the longest root to leaf path.
func MaxDepth(root *TreeNode) int {
	if root == nil {
		return 0
	}
	return 1 + max(MaxDepth(root.Left), MaxDepth(root.Right))
}

const nullToken = "#"

// Serialize encodes the tree as a comma separated preorder walk,
// marking absent children with the "#" token.
func Serialize(root *TreeNode) string {
	var tokens []string
	var walk func(node *TreeNode)
	walk = func(node *TreeNode) {
		if node == nil {
			tokens = append(tokens, nullToken)
			return
		}
		tokens = append(tokens, strconv.Itoa(node.Val))
		walk(node.Left)
		walk(node.Right)
	}
	walk(root)
	return strings.Join(tokens, ",")
}

// Deserialize rebuilds a tree from its Serialize representation.
func Deserialize(data string) (*TreeNode, error) {
	if data == "" {
		return nil, fmt.Errorf("%w: empty input", ErrMalformed)
	}
	root, rest, err := parsePreorder(strings.Split(data, ","))
	if err != nil {
		return nil, err
	}
	if 0 < len(rest) {
		return nil, fmt.Errorf("%w: %d unconsumed node value(s)", ErrMalformed, len(rest))
	}
	return root, nil
}

func parsePreorder(tokens []string) (*TreeNode, []string, error) {
	if len(tokens) == 0 {
		return nil, nil, fmt.Errorf("%w: unexpected end of input", ErrMalformed)
	}
	token := tokens[0]
	tokens = tokens[1:]
	if token == nullToken {
		return nil, tokens, nil
	}
	val, err := strconv.Atoi(token)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: invalid node value %q", ErrMalformed, token)
	}
	node := &TreeNode{Val: val}
	if node.Left, tokens, err = parsePreorder(tokens); err != nil {
		return nil, nil, err
	}
	if node.Right, tokens, err = parsePreorder(tokens); err != nil {
		return nil, nil, err
	}
	return node, tokens, nil
}
