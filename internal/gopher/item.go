package gopher

// ItemType is the single-character type code leading every listing line.
type ItemType rune

const (
	File            ItemType = '0'
	Dir             ItemType = '1'
	CsoServer       ItemType = '2'
	Error           ItemType = '3'
	BinHex          ItemType = '4'
	Dos             ItemType = '5'
	Uuencoded       ItemType = '6'
	IndexServer     ItemType = '7'
	Telnet          ItemType = '8'
	Binary          ItemType = '9'
	RedundantServer ItemType = '+'
	Tn3270          ItemType = 'T'
	Gif             ItemType = 'g'
	Image           ItemType = 'I'
	Html            ItemType = 'h'
	Info            ItemType = 'i'
	Sound           ItemType = 's'
	Document        ItemType = 'd'
	Unknown         ItemType = 0
)

var knownTypes = map[rune]ItemType{
	'0': File,
	'1': Dir,
	'2': CsoServer,
	'3': Error,
	'4': BinHex,
	'5': Dos,
	'6': Uuencoded,
	'7': IndexServer,
	'8': Telnet,
	'9': Binary,
	'+': RedundantServer,
	'T': Tn3270,
	'g': Gif,
	'I': Image,
	'h': Html,
	'i': Info,
	's': Sound,
	'd': Document,
}

// ParseItemType maps a type code to an ItemType. Unrecognised codes yield Unknown.
func ParseItemType(code rune) ItemType {
	if t, ok := knownTypes[code]; ok {
		return t
	}
	return Unknown
}

// Code returns the wire character for the type, or 'i' for Unknown.
func (t ItemType) Code() string {
	if t == Unknown {
		return string(Info)
	}
	return string(rune(t))
}

// Tag returns the fixed-width bracketed label shown in front of an entry.
// Informational and unrecognised entries get blank padding of the same width.
func (t ItemType) Tag() string {
	switch t {
	case Dir:
		return "[MAP]  "
	case File, Document:
		return "[FILE] "
	case Binary, BinHex, Dos, Uuencoded:
		return "[BIN]  "
	case Gif:
		return "[GIF]  "
	case Image:
		return "[IMG]  "
	case Sound:
		return "[SND]  "
	case Html:
		return "[WWW]  "
	case IndexServer, CsoServer:
		return "[QRY]  "
	case Telnet, Tn3270:
		return "[TEL]  "
	default:
		return "       "
	}
}

// Inline reports whether the entry opens inside the client (as opposed to
// being downloaded).
func (t ItemType) Inline() bool {
	switch t {
	case Dir, File, Document, Html, IndexServer, CsoServer, Telnet, Tn3270:
		return true
	}
	return false
}

// Download reports whether selecting the entry saves it to disk.
func (t ItemType) Download() bool {
	switch t {
	case Binary, BinHex, Dos, Uuencoded, Gif, Image, Sound:
		return true
	}
	return false
}

// Navigable reports whether the entry has any submit behaviour at all.
func (t ItemType) Navigable() bool {
	return t.Inline() || t.Download()
}

func (t ItemType) String() string {
	switch t {
	case File:
		return "file"
	case Dir:
		return "dir"
	case CsoServer:
		return "cso"
	case Error:
		return "error"
	case BinHex:
		return "binhex"
	case Dos:
		return "dos"
	case Uuencoded:
		return "uuencoded"
	case IndexServer:
		return "search"
	case Telnet:
		return "telnet"
	case Binary:
		return "binary"
	case RedundantServer:
		return "redundant"
	case Tn3270:
		return "tn3270"
	case Gif:
		return "gif"
	case Image:
		return "image"
	case Html:
		return "html"
	case Info:
		return "info"
	case Sound:
		return "sound"
	case Document:
		return "document"
	default:
		return "unknown"
	}
}
