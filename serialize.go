package matroska

import "time"

// Presented is the canonical presentation form of one element tree: the
// intermediate representation the render package turns into JSON or YAML.
// Field tags cover both encodings directly, the way the teacher's own
// wire/config structs double up encoding tags rather than keeping separate
// presentation types per format.
type Presented struct {
	Name     string      `json:"name" yaml:"name"`
	ID       string      `json:"id" yaml:"id"`
	Position *uint64     `json:"position,omitempty" yaml:"position,omitempty"`
	Size     string      `json:"size" yaml:"size"`
	Value    any         `json:"value,omitempty" yaml:"value,omitempty"`
	Children []Presented `json:"children,omitempty" yaml:"children,omitempty"`
}

// Present converts a Tree into its canonical presentation form: catalog
// names and hex ids, "Unknown" for an unresolved size, enum wire labels
// where the catalog restricts an Unsigned value, RFC3339 dates, and
// tagged sub-objects for the specialised Binary variants (Void,
// Corrupted, SeekId, Block, SimpleBlock).
func Present(t Tree) Presented {
	p := Presented{
		Name: t.Element.Header.ID.Name(),
		ID:   hexID(uint32(t.Element.Header.ID)),
		Size: presentSize(t.Element.Header),
	}
	p.Position = t.Element.Header.Position

	if len(t.Children) > 0 {
		p.Children = make([]Presented, len(t.Children))
		for i, c := range t.Children {
			p.Children[i] = Present(c)
		}
		return p
	}

	if t.Element.Header.ID.Kind() != KindMaster {
		p.Value = presentBody(t.Element.Body)
	}
	return p
}

func presentSize(h Header) string {
	if h.BodySize == nil {
		return "Unknown"
	}
	return itoa64(*h.BodySize)
}

func itoa64(v uint64) string {
	if v == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}

func presentBody(b Body) any {
	switch b.Kind {
	case KindUnsigned:
		if b.UnsignedEnum != nil {
			if b.UnsignedEnum.Doc != "" {
				return enumPresentation{Label: b.UnsignedEnum.WireLabel, Doc: b.UnsignedEnum.Doc}
			}
			return b.UnsignedEnum.WireLabel
		}
		return b.Unsigned
	case KindSigned:
		return b.Signed
	case KindFloat:
		return b.Float
	case KindString, KindUtf8:
		return b.Str
	case KindDate:
		return b.Date.UTC().Format(time.RFC3339Nano)
	case KindBinary:
		return presentBinary(b)
	default:
		return nil
	}
}

// enumPresentation is the shape an Unsigned enumeration member renders to
// when the catalog attaches documentation text to it; a member with no
// Doc renders as its bare label instead (the common case today, since the
// XML schema files build.rs draws documentation from were not part of the
// retrieval pack — see DESIGN.md).
type enumPresentation struct {
	Label string `json:"label" yaml:"label"`
	Doc   string `json:"doc" yaml:"doc"`
}

// binaryPresentation is the tagged-object shape a specialised Binary body
// renders to; Summary alone is used for the BinaryStandard case, so
// presentBinary returns a bare string there instead.
type binaryPresentation struct {
	Variant string `json:"variant" yaml:"variant"`
	Detail  any    `json:"detail,omitempty" yaml:"detail,omitempty"`
}

func presentBinary(b Body) any {
	switch b.BinaryVariant {
	case BinaryStandard:
		return b.BinarySummary
	case BinarySeekID:
		return binaryPresentation{Variant: "SeekId", Detail: b.BinarySeekID.Name()}
	case BinarySimpleBlock:
		return binaryPresentation{Variant: "SimpleBlock", Detail: presentSimpleBlock(*b.SimpleBlock)}
	case BinaryBlockVariant:
		return binaryPresentation{Variant: "Block", Detail: presentBlockHeader(*b.BlockHeaderOnly)}
	case BinaryVoidVariant:
		return binaryPresentation{Variant: "Void"}
	case BinaryCorruptedVariant:
		return binaryPresentation{Variant: "Corrupted"}
	default:
		return nil
	}
}

type blockPresentation struct {
	TrackNumber uint64 `json:"track_number" yaml:"track_number"`
	Timestamp   int16  `json:"timestamp" yaml:"timestamp"`
	Invisible   bool   `json:"invisible" yaml:"invisible"`
	Lacing      string `json:"lacing" yaml:"lacing"`
	NumFrames   *uint8 `json:"num_frames,omitempty" yaml:"num_frames,omitempty"`
}

type simpleBlockPresentation struct {
	blockPresentation
	Keyframe    bool `json:"keyframe" yaml:"keyframe"`
	Discardable bool `json:"discardable" yaml:"discardable"`
}

func presentBlockHeader(h BlockHeader) blockPresentation {
	return blockPresentation{
		TrackNumber: h.TrackNumber,
		Timestamp:   h.Timestamp,
		Invisible:   h.Invisible,
		Lacing:      h.Lacing.String(),
		NumFrames:   h.NumFrames,
	}
}

func presentSimpleBlock(sh SimpleBlockHeader) simpleBlockPresentation {
	return simpleBlockPresentation{
		blockPresentation: presentBlockHeader(sh.BlockHeader),
		Keyframe:          sh.Keyframe,
		Discardable:       sh.Discardable,
	}
}
