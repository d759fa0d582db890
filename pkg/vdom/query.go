package vdom

// Walk visits root and its descendants depth-first in document order.
// Returning false from fn skips the node's children.
func Walk(root *VNode, fn func(*VNode) bool) {
	if root == nil {
		return
	}
	if !fn(root) {
		return
	}
	for _, child := range root.Children {
		Walk(child, fn)
	}
}

// FindByClass returns every element under root (inclusive) carrying class.
func FindByClass(root *VNode, class string) []*VNode {
	var found []*VNode
	Walk(root, func(n *VNode) bool {
		if n.Kind == KindElement && n.HasClass(class) {
			found = append(found, n)
		}
		return true
	})
	return found
}

// FindFirstByClass returns the first element under root carrying class, or nil.
func FindFirstByClass(root *VNode, class string) *VNode {
	var found *VNode
	Walk(root, func(n *VNode) bool {
		if found != nil {
			return false
		}
		if n.Kind == KindElement && n.HasClass(class) {
			found = n
			return false
		}
		return true
	})
	return found
}

// FindByID returns the element under root with the given id, or nil.
func FindByID(root *VNode, id string) *VNode {
	var found *VNode
	Walk(root, func(n *VNode) bool {
		if found != nil {
			return false
		}
		if n.Kind == KindElement && n.GetAttr("id") == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// Contains reports whether target is root or one of its descendants.
func Contains(root, target *VNode) bool {
	if target == nil {
		return false
	}
	found := false
	Walk(root, func(n *VNode) bool {
		if found {
			return false
		}
		if n == target {
			found = true
			return false
		}
		return true
	})
	return found
}

// RemoveChild detaches target from the subtree under root.
// It reports whether target was found.
func RemoveChild(root, target *VNode) bool {
	if root == nil || target == nil {
		return false
	}
	for i, child := range root.Children {
		if child == target {
			root.Children = append(root.Children[:i], root.Children[i+1:]...)
			return true
		}
		if RemoveChild(child, target) {
			return true
		}
	}
	return false
}
