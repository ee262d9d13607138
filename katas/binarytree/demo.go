package binarytree

import (
	"context"
	"fmt"
	"io"
)

// Demo walks the package's exercises over the classic example tree.
func Demo(ctx context.Context, w io.Writer) error {
	root, err := FromLevelOrder(1, 2, 3, nil, 5, nil, 4)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "tree: %v\n", ToLevelOrder(root))
	fmt.Fprintf(w, "level order groups: %v\n", LevelOrder(root))
	fmt.Fprintf(w, "right side view: %v\n", RightSideView(root))
	fmt.Fprintf(w, "max depth: %d\n", MaxDepth(root))

	data := Serialize(root)
	fmt.Fprintf(w, "serialized: %s\n", data)
	back, err := Deserialize(data)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "deserialized: %v\n", ToLevelOrder(back))

	if _, err := Deserialize("1,2,oops"); err != nil {
		fmt.Fprintf(w, "deserialize %q: %v\n", "1,2,oops", err)
	}
	return nil
}
