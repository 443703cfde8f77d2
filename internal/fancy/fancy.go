// Package fancy provides pretty printing utilities and styling for CLI output
package fancy

import (
	"github.com/charmbracelet/lipgloss/tree"
)

// Tree returns a new tree with common styling applied
func Tree() *tree.Tree {
	t := tree.New()
	t.EnumeratorStyle(BranchStyle)
	t.Enumerator(tree.RoundedEnumerator)
	return t
}

// Branch returns a nested tree whose root is a styled section header.
// Child on a tree appends to that same tree, so sections must be built
// separately and attached to their parent.
func Branch(title string, children ...any) *tree.Tree {
	t := Tree()
	t.Root(HeaderStyle.Render(title))
	t.Child(children...)
	return t
}
