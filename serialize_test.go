package matroska

import "testing"

func TestPresentLeaf(t *testing.T) {
	tr := Tree{Element: Element{
		Header: Header{ID: EbmlVersion, HeaderSize: 2, BodySize: size(1), Position: pos(0)},
		Body:   Body{Kind: KindUnsigned, Unsigned: 1},
	}}
	p := Present(tr)
	if p.Name != "EbmlVersion" || p.Size != "1" {
		t.Fatalf("got %+v", p)
	}
	if v, ok := p.Value.(uint64); !ok || v != 1 {
		t.Fatalf("got value=%v", p.Value)
	}
}

func TestPresentUnknownSize(t *testing.T) {
	tr := Tree{Element: Element{
		Header: Header{ID: Segment, HeaderSize: 4, BodySize: nil, Position: pos(0)},
		Body:   Body{Kind: KindMaster},
	}}
	p := Present(tr)
	if p.Size != "Unknown" {
		t.Fatalf("got size=%q, want Unknown", p.Size)
	}
}

func TestPresentEnumDoc(t *testing.T) {
	t.Run("bare label when Doc is empty", func(t *testing.T) {
		tr := Tree{Element: Element{
			Header: Header{ID: TrackType, HeaderSize: 2, BodySize: size(1), Position: pos(0)},
			Body:   Body{Kind: KindUnsigned, Unsigned: 1, UnsignedEnum: &EnumMember{Label: "Video", WireLabel: "video"}},
		}}
		p := Present(tr)
		if p.Value != "video" {
			t.Fatalf("got value=%v, want bare label", p.Value)
		}
	})

	t.Run("label-and-doc object when Doc is set", func(t *testing.T) {
		tr := Tree{Element: Element{
			Header: Header{ID: TrackType, HeaderSize: 2, BodySize: size(1), Position: pos(0)},
			Body:   Body{Kind: KindUnsigned, Unsigned: 1, UnsignedEnum: &EnumMember{Label: "Video", WireLabel: "video", Doc: "a video track"}},
		}}
		p := Present(tr)
		ep, ok := p.Value.(enumPresentation)
		if !ok || ep.Label != "video" || ep.Doc != "a video track" {
			t.Fatalf("got %+v", p.Value)
		}
	})
}

func TestPresentBinaryVariants(t *testing.T) {
	seekEl := Element{
		Header: Header{ID: SeekId, HeaderSize: 2, BodySize: size(4), Position: pos(0)},
		Body:   Body{Kind: KindBinary, BinaryVariant: BinarySeekID, BinarySeekID: Ebml},
	}
	p := Present(Tree{Element: seekEl})
	bp, ok := p.Value.(binaryPresentation)
	if !ok || bp.Variant != "SeekId" || bp.Detail != "Ebml" {
		t.Fatalf("got %+v", p.Value)
	}
}
