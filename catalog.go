package matroska

import (
	"strings"
	"unicode"
)

// Kind classifies the wire-level value type of an element's body, per the
// EBML/Matroska schema. It is the Go representation of the catalog's
// per-element "value type" field described for the element catalog.
type Kind int

// The eight body kinds a catalog entry may declare.
const (
	KindMaster Kind = iota
	KindUnsigned
	KindSigned
	KindFloat
	KindString
	KindUtf8
	KindDate
	KindBinary
)

// String renders a Kind the way it appears in rendered output and error
// messages.
func (k Kind) String() string {
	switch k {
	case KindMaster:
		return "Master"
	case KindUnsigned:
		return "Unsigned"
	case KindSigned:
		return "Signed"
	case KindFloat:
		return "Float"
	case KindString:
		return "String"
	case KindUtf8:
		return "Utf8"
	case KindDate:
		return "Date"
	case KindBinary:
		return "Binary"
	default:
		return "Unknown"
	}
}

// Id is an EBML element identifier. Its numeric value is the raw wire value,
// width marker bits included, which is how EBML defines an id's identity. A
// value absent from the catalog is an unrecognised id; IdCorrupted is a
// synthetic sentinel never seen on the wire, produced only by the resync
// scanner.
type Id uint32

// IdCorrupted marks a synthetic element manufactured by the resync scanner
// to account for a byte range that could not be decoded. No wire value maps
// to it: zero is not a legal EBML id (a leading zero byte is always
// InvalidVarint/InvalidId).
const IdCorrupted Id = 0

// EnumMember is one value of an Unsigned element's restricted enumeration:
// a bijection between a wire value and a label, plus the original label
// text so the serialiser can round-trip it, and optional documentation.
type EnumMember struct {
	Value     uint64
	Label     string // canonicalised, PascalCase
	WireLabel string // label exactly as it appears in the schema
	Doc       string
}

type catalogEntry struct {
	name string
	kind Kind
	enum map[uint64]EnumMember
}

// Name returns the element's canonical name, or a hex literal for unknown
// ids and "Corrupted" for the resync sentinel.
func (id Id) Name() string {
	if id == IdCorrupted {
		return "Corrupted"
	}
	if e, ok := catalog[id]; ok {
		return e.name
	}
	return hexID(uint32(id))
}

// Kind returns the element's catalog value type. Unknown ids are reported
// as KindBinary, matching EBML's "unrecognised elements are opaque binary"
// fallback behaviour.
func (id Id) Kind() Kind {
	if e, ok := catalog[id]; ok {
		return e.kind
	}
	return KindBinary
}

// IsKnown reports whether id appears in the static catalog.
func (id Id) IsKnown() bool {
	_, ok := catalog[id]
	return ok
}

// Enumeration returns the restricted value set for id, if the schema
// declares one. Only Unsigned elements ever have an enumeration.
func (id Id) Enumeration() (map[uint64]EnumMember, bool) {
	e, ok := catalog[id]
	if !ok || e.enum == nil {
		return nil, false
	}
	return e.enum, true
}

// EnumLabel looks up the enumeration member for value under id, if any.
func (id Id) EnumLabel(value uint64) (EnumMember, bool) {
	enum, ok := id.Enumeration()
	if !ok {
		return EnumMember{}, false
	}
	m, ok := enum[value]
	return m, ok
}

func hexID(v uint32) string {
	const hexDigits = "0123456789ABCDEF"
	if v == 0 {
		return "0x0"
	}
	var buf [8]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = hexDigits[v&0xF]
		v >>= 4
	}
	return "0x" + string(buf[i:])
}

// canonicalizeLabel applies the enumeration label canonicalisation rules:
// non-alphanumeric characters become word separators, the result is
// PascalCase, a would-be-numeric-leading label like "3DES" becomes
// "TripleDes", and repeated "Reserved" labels within one enumeration are
// disambiguated with a 1-based ordinal.
func canonicalizeLabel(raw string, reservedIndex *int) string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	var b strings.Builder
	for _, f := range fields {
		b.WriteString(strings.ToUpper(f[:1]))
		if len(f) > 1 {
			b.WriteString(strings.ToLower(f[1:]))
		}
	}
	label := b.String()

	if label == "3Des" || label == "3DES" {
		return "TripleDes"
	}
	if label == "Reserved" {
		n := *reservedIndex
		*reservedIndex++
		return "Reserved" + itoa(n)
	}
	return label
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

func enumMember(value uint64, wireLabel, doc string, reservedIndex *int) EnumMember {
	return EnumMember{
		Value:     value,
		Label:     canonicalizeLabel(wireLabel, reservedIndex),
		WireLabel: wireLabel,
		Doc:       doc,
	}
}

func buildEnum(entries ...EnumMember) map[uint64]EnumMember {
	m := make(map[uint64]EnumMember, len(entries))
	for _, e := range entries {
		m[e.Value] = e
	}
	return m
}

// The ten 4-octet top-level identifiers usable as resynchronisation anchors
// (EBML calls these "useful for resynchronizing to major structures in the
// event of data corruption or loss").
const (
	Ebml        Id = 0x1A45DFA3
	Segment     Id = 0x18538067
	SeekHead    Id = 0x114D9B74
	Info        Id = 0x1549A966
	Cluster     Id = 0x1F43B675
	Tracks      Id = 0x1654AE6B
	Cues        Id = 0x1C53BB6B
	Attachments Id = 0x1941A469
	Chapters    Id = 0x1043A770
	Tags        Id = 0x1254C367
)

// SyncIDs lists the resynchronisation anchors in the order the resync
// scanner searches for them.
var SyncIDs = []Id{Ebml, Segment, SeekHead, Info, Cluster, Tracks, Cues, Attachments, Chapters, Tags}

// The remaining catalog identifiers, named and valued per the Matroska and
// WebM specifications (matroska.org/technical/specs, webmproject.org).
const (
	EbmlVersion            Id = 0x4286
	EbmlReadVersion        Id = 0x42F7
	EbmlMaxIdLength        Id = 0x42F2
	EbmlMaxSizeLength      Id = 0x42F3
	DocType                Id = 0x4282
	DocTypeVersion         Id = 0x4287
	DocTypeReadVersion     Id = 0x4285
	Void                   Id = 0xEC
	Crc32                  Id = 0xBF
	Seek                   Id = 0x4DBB
	SeekId                 Id = 0x53AB
	SeekPosition           Id = 0x53AC
	TimecodeScale          Id = 0x2AD7B1
	Duration               Id = 0x4489
	DateUtc                Id = 0x4461
	Title                  Id = 0x7BA9
	MuxingApp              Id = 0x4D80
	WritingApp             Id = 0x5741
	Timecode               Id = 0xE7
	PrevSize               Id = 0xAB
	SimpleBlock            Id = 0xA3
	BlockGroup             Id = 0xA0
	Block                  Id = 0xA1
	BlockVirtual           Id = 0xA2
	BlockAdditions         Id = 0x75A1
	BlockMore              Id = 0xA6
	BlockAddId             Id = 0xEE
	BlockAdditional        Id = 0xA5
	BlockDuration          Id = 0x9B
	ReferenceBlock         Id = 0xFB
	DiscardPadding         Id = 0x75A2
	Slices                 Id = 0x8E
	TimeSlice              Id = 0xE8
	LaceNumber             Id = 0xCC
	TrackEntry             Id = 0xAE
	TrackNumber            Id = 0xD7
	TrackUid               Id = 0x73C5
	TrackType              Id = 0x83
	FlagEnabled            Id = 0xB9
	FlagDefault            Id = 0x88
	FlagForced             Id = 0x55AA
	FlagLacing             Id = 0x9C
	DefaultDuration        Id = 0x23E383
	Name                   Id = 0x536E
	Language               Id = 0x22B59C
	CodecId                Id = 0x86
	CodecPrivate           Id = 0x63A2
	CodecName              Id = 0x258688
	CodecDelay             Id = 0x56AA
	SeekPreRoll            Id = 0x56BB
	Video                  Id = 0xE0
	FlagInterlaced         Id = 0x9A
	StereoMode             Id = 0x53B8
	AlphaMode              Id = 0x53C0
	PixelWidth             Id = 0xB0
	PixelHeight            Id = 0xBA
	PixelCropBottom        Id = 0x54AA
	PixelCropTop           Id = 0x54BB
	PixelCropLeft          Id = 0x54CC
	PixelCropRight         Id = 0x54DD
	DisplayWidth           Id = 0x54B0
	DisplayHeight          Id = 0x54BA
	DisplayUnit            Id = 0x54B2
	AspectRatioType        Id = 0x54B3
	FrameRate              Id = 0x2383E3
	Colour                 Id = 0x55B0
	MatrixCoefficients     Id = 0x55B1
	BitsPerChannel         Id = 0x55B2
	ChromaSubsamplingHorz  Id = 0x55B3
	ChromaSubsamplingVert  Id = 0x55B4
	CbSubsamplingHorz      Id = 0x55B5
	CbSubsamplingVert      Id = 0x55B6
	ChromaSitingHorz       Id = 0x55B7
	ChromaSitingVert       Id = 0x55B8
	Range                  Id = 0x55B9
	TransferCharacteristic Id = 0x55BA
	Primaries              Id = 0x55BB
	MaxCll                 Id = 0x55BC
	MaxFall                Id = 0x55BD
	MasteringMetadata      Id = 0x55D0
	PrimaryRChromaticityX  Id = 0x55D1
	PrimaryRChromaticityY  Id = 0x55D2
	PrimaryGChromaticityX  Id = 0x55D3
	PrimaryGChromaticityY  Id = 0x55D4
	PrimaryBChromaticityX  Id = 0x55D5
	PrimaryBChromaticityY  Id = 0x55D6
	WhitePointChromaticityX Id = 0x55D7
	WhitePointChromaticityY Id = 0x55D8
	LuminanceMax           Id = 0x55D9
	LuminanceMin           Id = 0x55DA
	Projection             Id = 0x7670
	ProjectionType         Id = 0x7671
	ProjectionPrivate      Id = 0x7672
	ProjectionPoseYaw      Id = 0x7673
	ProjectionPosePitch    Id = 0x7674
	ProjectionPoseRoll     Id = 0x7675
	Audio                  Id = 0xE1
	SamplingFrequency      Id = 0xB5
	OutputSamplingFreq     Id = 0x78B5
	Channels               Id = 0x9F
	BitDepth               Id = 0x6264
	ContentEncodings       Id = 0x6D80
	ContentEncoding        Id = 0x6240
	ContentEncodingOrder   Id = 0x5031
	ContentEncodingScope   Id = 0x5032
	ContentEncodingType    Id = 0x5033
	ContentEncryption      Id = 0x5035
	ContentEncAlgo         Id = 0x47E1
	ContentEncKeyId        Id = 0x47E2
	ContentEncAesSettings  Id = 0x47E7
	AesSettingsCipherMode  Id = 0x47E8
	CuePoint               Id = 0xBB
	CueTime                Id = 0xB3
	CueTrackPositions      Id = 0xB7
	CueTrack               Id = 0xF7
	CueClusterPosition     Id = 0xF1
	CueRelativePosition    Id = 0xF0
	CueDuration            Id = 0xB2
	CueBlockNumber         Id = 0x5378
	EditionEntry           Id = 0x45B9
	ChapterAtom            Id = 0xB6
	ChapterUid             Id = 0x73C4
	ChapterStringUid       Id = 0x5654
	ChapterTimeStart       Id = 0x91
	ChapterTimeEnd         Id = 0x92
	ChapterDisplay         Id = 0x80
	ChapString             Id = 0x85
	ChapLanguage           Id = 0x437C
	ChapCountry            Id = 0x437E
	Tag                    Id = 0x7373
	Targets                Id = 0x63C0
	TargetTypeValue        Id = 0x68CA
	TargetType             Id = 0x63CA
	TagTrackUid            Id = 0x63C5
	SimpleTag              Id = 0x67C8
	TagName                Id = 0x45A3
	TagLanguage            Id = 0x447A
	TagDefault             Id = 0x4484
	TagString              Id = 0x4487
	TagBinary              Id = 0x4485
	AttachedFile           Id = 0x61A7
	FileDescription        Id = 0x467E
	FileName               Id = 0x466E
	FileMimeType           Id = 0x4660
	FileData               Id = 0x465C
	FileUid                Id = 0x46AE
)

func init() {
	r := 1 // shared "Reserved" ordinal counter within a single enumeration

	trackTypeEnum := buildEnum(
		enumMember(1, "video", "", &r),
		enumMember(2, "audio", "", &r),
		enumMember(3, "complex", "", &r),
		enumMember(16, "logo", "", &r),
		enumMember(17, "subtitle", "", &r),
		enumMember(18, "buttons", "", &r),
		enumMember(19, "control", "", &r),
		enumMember(32, "metadata", "", &r),
	)

	r = 1
	flagInterlacedEnum := buildEnum(
		enumMember(0, "undetermined", "", &r),
		enumMember(1, "interlaced", "", &r),
		enumMember(2, "progressive", "", &r),
	)

	r = 1
	stereoModeEnum := buildEnum(
		enumMember(0, "mono", "", &r),
		enumMember(1, "side by side (left eye first)", "", &r),
		enumMember(2, "top - bottom (right eye is first)", "", &r),
		enumMember(3, "top - bottom (left eye is first)", "", &r),
		enumMember(11, "side by side (right eye first)", "", &r),
	)

	r = 1
	displayUnitEnum := buildEnum(
		enumMember(0, "pixels", "", &r),
		enumMember(1, "centimeters", "", &r),
		enumMember(2, "inches", "", &r),
		enumMember(3, "display aspect ratio", "", &r),
		enumMember(4, "unknown", "", &r),
	)

	r = 1
	aspectRatioTypeEnum := buildEnum(
		enumMember(0, "free resizing", "", &r),
		enumMember(1, "keep aspect ratio", "", &r),
		enumMember(2, "fixed", "", &r),
	)

	r = 1
	matrixCoefficientsEnum := buildEnum(
		enumMember(0, "identity", "", &r),
		enumMember(1, "ITU-R BT.709", "", &r),
		enumMember(2, "unspecified", "", &r),
		enumMember(6, "ITU-R BT.601", "", &r),
	)

	r = 1
	rangeEnum := buildEnum(
		enumMember(0, "unspecified", "", &r),
		enumMember(1, "broadcast range", "", &r),
		enumMember(2, "full range (no clipping)", "", &r),
		enumMember(3, "defined by matrixcoefficients / transfercharacteristics", "", &r),
	)

	r = 1
	contentEncodingTypeEnum := buildEnum(
		enumMember(0, "compression", "", &r),
		enumMember(1, "encryption", "", &r),
	)

	r = 1
	contentEncAlgoEnum := buildEnum(
		enumMember(0, "only header compression", "", &r),
		enumMember(1, "reserved", "", &r),
		enumMember(2, "reserved", "", &r),
		enumMember(3, "zlib", "", &r),
		enumMember(4, "reserved", "", &r),
	)

	r = 1
	aesCipherModeEnum := buildEnum(
		enumMember(1, "aes-ctr / aes-128-ctr", "", &r),
		enumMember(2, "aes-cbc / aes-128-cbc", "", &r),
	)

	r = 1
	projectionTypeEnum := buildEnum(
		enumMember(0, "rectangular", "", &r),
		enumMember(1, "equirectangular", "", &r),
		enumMember(2, "cubemap", "", &r),
		enumMember(3, "mesh", "", &r),
	)

	catalog = map[Id]catalogEntry{
		Ebml:                    {"Ebml", KindMaster, nil},
		EbmlVersion:             {"EbmlVersion", KindUnsigned, nil},
		EbmlReadVersion:         {"EbmlReadVersion", KindUnsigned, nil},
		EbmlMaxIdLength:         {"EbmlMaxIdLength", KindUnsigned, nil},
		EbmlMaxSizeLength:       {"EbmlMaxSizeLength", KindUnsigned, nil},
		DocType:                 {"DocType", KindString, nil},
		DocTypeVersion:          {"DocTypeVersion", KindUnsigned, nil},
		DocTypeReadVersion:      {"DocTypeReadVersion", KindUnsigned, nil},
		Void:                    {"Void", KindBinary, nil},
		Crc32:                   {"Crc32", KindBinary, nil},
		Segment:                 {"Segment", KindMaster, nil},
		SeekHead:                {"SeekHead", KindMaster, nil},
		Seek:                    {"Seek", KindMaster, nil},
		SeekId:                  {"SeekId", KindBinary, nil},
		SeekPosition:            {"SeekPosition", KindUnsigned, nil},
		Info:                    {"Info", KindMaster, nil},
		TimecodeScale:           {"TimecodeScale", KindUnsigned, nil},
		Duration:                {"Duration", KindFloat, nil},
		DateUtc:                 {"DateUtc", KindDate, nil},
		Title:                   {"Title", KindUtf8, nil},
		MuxingApp:               {"MuxingApp", KindUtf8, nil},
		WritingApp:              {"WritingApp", KindUtf8, nil},
		Cluster:                 {"Cluster", KindMaster, nil},
		Timecode:                {"Timecode", KindUnsigned, nil},
		PrevSize:                {"PrevSize", KindUnsigned, nil},
		SimpleBlock:             {"SimpleBlock", KindBinary, nil},
		BlockGroup:              {"BlockGroup", KindMaster, nil},
		Block:                   {"Block", KindBinary, nil},
		BlockVirtual:            {"BlockVirtual", KindBinary, nil},
		BlockAdditions:          {"BlockAdditions", KindMaster, nil},
		BlockMore:               {"BlockMore", KindMaster, nil},
		BlockAddId:              {"BlockAddId", KindUnsigned, nil},
		BlockAdditional:         {"BlockAdditional", KindBinary, nil},
		BlockDuration:           {"BlockDuration", KindUnsigned, nil},
		ReferenceBlock:          {"ReferenceBlock", KindSigned, nil},
		DiscardPadding:          {"DiscardPadding", KindSigned, nil},
		Slices:                  {"Slices", KindMaster, nil},
		TimeSlice:               {"TimeSlice", KindMaster, nil},
		LaceNumber:              {"LaceNumber", KindUnsigned, nil},
		Tracks:                  {"Tracks", KindMaster, nil},
		TrackEntry:              {"TrackEntry", KindMaster, nil},
		TrackNumber:             {"TrackNumber", KindUnsigned, nil},
		TrackUid:                {"TrackUid", KindUnsigned, nil},
		TrackType:               {"TrackType", KindUnsigned, trackTypeEnum},
		FlagEnabled:             {"FlagEnabled", KindUnsigned, nil},
		FlagDefault:             {"FlagDefault", KindUnsigned, nil},
		FlagForced:              {"FlagForced", KindUnsigned, nil},
		FlagLacing:              {"FlagLacing", KindUnsigned, nil},
		DefaultDuration:         {"DefaultDuration", KindUnsigned, nil},
		Name:                    {"Name", KindUtf8, nil},
		Language:                {"Language", KindString, nil},
		CodecId:                 {"CodecId", KindString, nil},
		CodecPrivate:            {"CodecPrivate", KindBinary, nil},
		CodecName:               {"CodecName", KindUtf8, nil},
		CodecDelay:              {"CodecDelay", KindUnsigned, nil},
		SeekPreRoll:             {"SeekPreRoll", KindUnsigned, nil},
		Video:                   {"Video", KindMaster, nil},
		FlagInterlaced:          {"FlagInterlaced", KindUnsigned, flagInterlacedEnum},
		StereoMode:              {"StereoMode", KindUnsigned, stereoModeEnum},
		AlphaMode:               {"AlphaMode", KindUnsigned, nil},
		PixelWidth:              {"PixelWidth", KindUnsigned, nil},
		PixelHeight:             {"PixelHeight", KindUnsigned, nil},
		PixelCropBottom:         {"PixelCropBottom", KindUnsigned, nil},
		PixelCropTop:            {"PixelCropTop", KindUnsigned, nil},
		PixelCropLeft:           {"PixelCropLeft", KindUnsigned, nil},
		PixelCropRight:          {"PixelCropRight", KindUnsigned, nil},
		DisplayWidth:            {"DisplayWidth", KindUnsigned, nil},
		DisplayHeight:           {"DisplayHeight", KindUnsigned, nil},
		DisplayUnit:             {"DisplayUnit", KindUnsigned, displayUnitEnum},
		AspectRatioType:         {"AspectRatioType", KindUnsigned, aspectRatioTypeEnum},
		FrameRate:               {"FrameRate", KindFloat, nil},
		Colour:                  {"Colour", KindMaster, nil},
		MatrixCoefficients:      {"MatrixCoefficients", KindUnsigned, matrixCoefficientsEnum},
		BitsPerChannel:          {"BitsPerChannel", KindUnsigned, nil},
		ChromaSubsamplingHorz:   {"ChromaSubsamplingHorz", KindUnsigned, nil},
		ChromaSubsamplingVert:   {"ChromaSubsamplingVert", KindUnsigned, nil},
		CbSubsamplingHorz:       {"CbSubsamplingHorz", KindUnsigned, nil},
		CbSubsamplingVert:       {"CbSubsamplingVert", KindUnsigned, nil},
		ChromaSitingHorz:        {"ChromaSitingHorz", KindUnsigned, nil},
		ChromaSitingVert:        {"ChromaSitingVert", KindUnsigned, nil},
		Range:                   {"Range", KindUnsigned, rangeEnum},
		TransferCharacteristic:  {"TransferCharacteristics", KindUnsigned, nil},
		Primaries:               {"Primaries", KindUnsigned, nil},
		MaxCll:                  {"MaxCll", KindUnsigned, nil},
		MaxFall:                 {"MaxFall", KindUnsigned, nil},
		MasteringMetadata:       {"MasteringMetadata", KindMaster, nil},
		PrimaryRChromaticityX:   {"PrimaryRChromaticityX", KindFloat, nil},
		PrimaryRChromaticityY:   {"PrimaryRChromaticityY", KindFloat, nil},
		PrimaryGChromaticityX:   {"PrimaryGChromaticityX", KindFloat, nil},
		PrimaryGChromaticityY:   {"PrimaryGChromaticityY", KindFloat, nil},
		PrimaryBChromaticityX:   {"PrimaryBChromaticityX", KindFloat, nil},
		PrimaryBChromaticityY:   {"PrimaryBChromaticityY", KindFloat, nil},
		WhitePointChromaticityX: {"WhitePointChromaticityX", KindFloat, nil},
		WhitePointChromaticityY: {"WhitePointChromaticityY", KindFloat, nil},
		LuminanceMax:            {"LuminanceMax", KindFloat, nil},
		LuminanceMin:            {"LuminanceMin", KindFloat, nil},
		Projection:              {"Projection", KindMaster, nil},
		ProjectionType:          {"ProjectionType", KindUnsigned, projectionTypeEnum},
		ProjectionPrivate:       {"ProjectionPrivate", KindBinary, nil},
		ProjectionPoseYaw:       {"ProjectionPoseYaw", KindFloat, nil},
		ProjectionPosePitch:     {"ProjectionPosePitch", KindFloat, nil},
		ProjectionPoseRoll:      {"ProjectionPoseRoll", KindFloat, nil},
		Audio:                   {"Audio", KindMaster, nil},
		SamplingFrequency:       {"SamplingFrequency", KindFloat, nil},
		OutputSamplingFreq:      {"OutputSamplingFrequency", KindFloat, nil},
		Channels:                {"Channels", KindUnsigned, nil},
		BitDepth:                {"BitDepth", KindUnsigned, nil},
		ContentEncodings:        {"ContentEncodings", KindMaster, nil},
		ContentEncoding:         {"ContentEncoding", KindMaster, nil},
		ContentEncodingOrder:    {"ContentEncodingOrder", KindUnsigned, nil},
		ContentEncodingScope:    {"ContentEncodingScope", KindUnsigned, nil},
		ContentEncodingType:     {"ContentEncodingType", KindUnsigned, contentEncodingTypeEnum},
		ContentEncryption:       {"ContentEncryption", KindMaster, nil},
		ContentEncAlgo:          {"ContentEncAlgo", KindUnsigned, contentEncAlgoEnum},
		ContentEncKeyId:         {"ContentEncKeyId", KindBinary, nil},
		ContentEncAesSettings:   {"ContentEncAesSettings", KindMaster, nil},
		AesSettingsCipherMode:   {"AesSettingsCipherMode", KindUnsigned, aesCipherModeEnum},
		Cues:                    {"Cues", KindMaster, nil},
		CuePoint:                {"CuePoint", KindMaster, nil},
		CueTime:                 {"CueTime", KindUnsigned, nil},
		CueTrackPositions:       {"CueTrackPositions", KindMaster, nil},
		CueTrack:                {"CueTrack", KindUnsigned, nil},
		CueClusterPosition:      {"CueClusterPosition", KindUnsigned, nil},
		CueRelativePosition:     {"CueRelativePosition", KindUnsigned, nil},
		CueDuration:             {"CueDuration", KindUnsigned, nil},
		CueBlockNumber:          {"CueBlockNumber", KindUnsigned, nil},
		Chapters:                {"Chapters", KindMaster, nil},
		EditionEntry:            {"EditionEntry", KindMaster, nil},
		ChapterAtom:             {"ChapterAtom", KindMaster, nil},
		ChapterUid:              {"ChapterUid", KindUnsigned, nil},
		ChapterStringUid:        {"ChapterStringUid", KindUtf8, nil},
		ChapterTimeStart:        {"ChapterTimeStart", KindUnsigned, nil},
		ChapterTimeEnd:          {"ChapterTimeEnd", KindUnsigned, nil},
		ChapterDisplay:          {"ChapterDisplay", KindMaster, nil},
		ChapString:              {"ChapString", KindUtf8, nil},
		ChapLanguage:            {"ChapLanguage", KindString, nil},
		ChapCountry:             {"ChapCountry", KindString, nil},
		Tags:                    {"Tags", KindMaster, nil},
		Tag:                     {"Tag", KindMaster, nil},
		Targets:                 {"Targets", KindMaster, nil},
		TargetTypeValue:         {"TargetTypeValue", KindUnsigned, nil},
		TargetType:              {"TargetType", KindString, nil},
		TagTrackUid:             {"TagTrackUid", KindUnsigned, nil},
		SimpleTag:               {"SimpleTag", KindMaster, nil},
		TagName:                 {"TagName", KindUtf8, nil},
		TagLanguage:             {"TagLanguage", KindString, nil},
		TagDefault:              {"TagDefault", KindUnsigned, nil},
		TagString:               {"TagString", KindUtf8, nil},
		TagBinary:               {"TagBinary", KindBinary, nil},
		Attachments:             {"Attachments", KindMaster, nil},
		AttachedFile:            {"AttachedFile", KindMaster, nil},
		FileDescription:         {"FileDescription", KindUtf8, nil},
		FileName:                {"FileName", KindUtf8, nil},
		FileMimeType:            {"FileMimeType", KindString, nil},
		FileData:                {"FileData", KindBinary, nil},
		FileUid:                 {"FileUid", KindUnsigned, nil},
	}
}

var catalog map[Id]catalogEntry

// CanBeChildOf implements the catalog's admissibility predicate used by the
// tree builder: true except for the two exclusions in invariant 5 (a
// Cluster is never a descendant of another Cluster; Ebml is never a
// descendant of any element).
func CanBeChildOf(child, parent Id) bool {
	if child == Ebml {
		return false
	}
	if child == Cluster && parent == Cluster {
		return false
	}
	return true
}
