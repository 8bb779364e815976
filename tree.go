package matroska

// Tree is a reconstructed EBML element together with its decoded children,
// in stream order. Leaf elements (every Kind but KindMaster, plus
// IdCorrupted) have no Children.
type Tree struct {
	Element  Element
	Children []Tree
}

// BuildTrees consumes a flat, stream-order sequence of Elements — as
// produced by repeated Driver.Next calls — and reconstructs the nesting a
// Master element's body implies. It relies on each Element's
// Header.Position having been stamped by the driver: a child belongs to
// its parent for as long as its position falls strictly before the
// parent's end position (Position + TotalSize). A parent with unknown
// size (legal only for Segment and Cluster) has no such end position, so
// its children are instead delimited by CanBeChildOf admissibility: the
// first following element the catalog says cannot nest under it ends its
// child list.
func BuildTrees(elems []Element) []Tree {
	trees, _ := buildChildren(elems, 0, nil)
	return trees
}

func buildChildren(elems []Element, i int, parent *Element) ([]Tree, int) {
	var limit uint64
	bounded := false
	if parent != nil {
		if end, ok := endPosition(*parent); ok {
			limit, bounded = end, true
		}
	}

	var out []Tree
	for i < len(elems) {
		el := elems[i]

		if bounded {
			if el.Header.Position != nil && *el.Header.Position >= limit {
				break
			}
		} else if parent != nil {
			if !CanBeChildOf(el.Header.ID, parent.Header.ID) {
				break
			}
		}

		if el.Header.ID.Kind() != KindMaster {
			out = append(out, Tree{Element: el})
			i++
			continue
		}

		children, next := buildChildren(elems, i+1, &el)
		out = append(out, Tree{Element: el, Children: children})
		i = next
	}
	return out, i
}

// endPosition reports the absolute byte offset one past el, if both its
// position and its size are known.
func endPosition(el Element) (uint64, bool) {
	if el.Header.Position == nil {
		return 0, false
	}
	total, ok := el.Header.TotalSize()
	if !ok {
		return 0, false
	}
	return *el.Header.Position + total, true
}
