package matroska

import "testing"

func pos(v uint64) *uint64 { return &v }
func size(v uint64) *uint64 { return &v }

func TestBuildTrees(t *testing.T) {
	// Segment(unknown size) { Info { EbmlVersion=1 } }: the unknown-size
	// Segment takes Info as a child, and Info's known size bounds its own
	// child list to the EbmlVersion element that starts inside it.
	infoEl := Element{
		Header: Header{ID: Info, HeaderSize: 5, BodySize: size(4), Position: pos(10)},
		Body:   Body{Kind: KindMaster},
	}
	versionEl := Element{
		Header: Header{ID: EbmlVersion, HeaderSize: 2, BodySize: size(1), Position: pos(15)},
		Body:   Body{Kind: KindUnsigned, Unsigned: 1},
	}
	segmentEl := Element{
		Header: Header{ID: Segment, HeaderSize: 4, BodySize: nil, Position: pos(0)},
		Body:   Body{Kind: KindMaster},
	}

	elems := []Element{segmentEl, infoEl, versionEl}

	trees := BuildTrees(elems)
	if len(trees) != 1 {
		t.Fatalf("got %d top-level trees, want 1", len(trees))
	}
	seg := trees[0]
	if seg.Element.Header.ID != Segment || len(seg.Children) != 1 {
		t.Fatalf("got %+v", seg)
	}
	info := seg.Children[0]
	if info.Element.Header.ID != Info || len(info.Children) != 1 {
		t.Fatalf("got %+v", info)
	}
	if info.Children[0].Element.Header.ID != EbmlVersion {
		t.Fatalf("got %+v", info.Children[0])
	}
}

func TestBuildTreesBoundedMaster(t *testing.T) {
	child := Element{
		Header: Header{ID: EbmlVersion, HeaderSize: 2, BodySize: size(1), Position: pos(2)},
		Body:   Body{Kind: KindUnsigned, Unsigned: 1},
	}
	outside := Element{
		Header: Header{ID: EbmlVersion, HeaderSize: 2, BodySize: size(1), Position: pos(20)},
		Body:   Body{Kind: KindUnsigned, Unsigned: 2},
	}
	parent := Element{
		Header: Header{ID: Ebml, HeaderSize: 2, BodySize: size(3), Position: pos(0)},
		Body:   Body{Kind: KindMaster},
	}

	trees := BuildTrees([]Element{parent, child, outside})
	if len(trees) != 2 {
		t.Fatalf("got %d top-level trees, want 2", len(trees))
	}
	if len(trees[0].Children) != 1 {
		t.Fatalf("want exactly one child inside the bounded parent, got %d", len(trees[0].Children))
	}
	if trees[1].Element.Header.Position != outside.Header.Position {
		t.Fatalf("outside element should be a sibling, not nested")
	}
}
