package bplus

// splitInternal promotes key[mid]; it is removed from both halves.
// left keeps keys [0:mid) and children [0:mid], right gets the rest.
func (n *node[K, V]) splitInternal(a *arena[K, V]) (K, *node[K, V]) {
	mid := len(n.key) / 2
	promote := n.key[mid]

	right := a.allocate(NodeInternal, n.order)
	right.key = append(right.key, n.key[mid+1:]...)
	right.children = append(right.children, n.children[mid+1:]...)
	right.parent = n.parent

	// update parent ids for children moved to right
	for _, cid := range right.children {
		a.mustGet(cid).parent = right.id
	}

	clear(n.key[mid:])
	n.key = n.key[:mid]
	n.children = n.children[:mid+1]

	return promote, right
}
