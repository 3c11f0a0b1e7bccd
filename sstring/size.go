package sstring

// Buffer is the set of inline buffers a String can be built on. Each member
// is a byte array one longer than the capacity it provides; the extra byte
// holds the terminator.
type Buffer interface {
	~[1 + 1]byte | ~[2 + 1]byte | ~[4 + 1]byte | ~[7 + 1]byte |
		~[8 + 1]byte | ~[15 + 1]byte | ~[16 + 1]byte | ~[24 + 1]byte |
		~[31 + 1]byte | ~[32 + 1]byte | ~[48 + 1]byte | ~[63 + 1]byte |
		~[64 + 1]byte | ~[127 + 1]byte | ~[128 + 1]byte | ~[255 + 1]byte |
		~[256 + 1]byte | ~[511 + 1]byte | ~[512 + 1]byte | ~[1023 + 1]byte |
		~[1024 + 1]byte | ~[2047 + 1]byte | ~[2048 + 1]byte | ~[4095 + 1]byte |
		~[4096 + 1]byte
}

type (
	Size1    [1 + 1]byte
	Size2    [2 + 1]byte
	Size4    [4 + 1]byte
	Size7    [7 + 1]byte
	Size8    [8 + 1]byte
	Size15   [15 + 1]byte
	Size16   [16 + 1]byte
	Size24   [24 + 1]byte
	Size31   [31 + 1]byte
	Size32   [32 + 1]byte
	Size48   [48 + 1]byte
	Size63   [63 + 1]byte
	Size64   [64 + 1]byte
	Size127  [127 + 1]byte
	Size128  [128 + 1]byte
	Size255  [255 + 1]byte
	Size256  [256 + 1]byte
	Size511  [511 + 1]byte
	Size512  [512 + 1]byte
	Size1023 [1023 + 1]byte
	Size1024 [1024 + 1]byte
	Size2047 [2047 + 1]byte
	Size2048 [2048 + 1]byte
	Size4095 [4095 + 1]byte
	Size4096 [4096 + 1]byte
)

type (
	String1    = String[Size1]
	String2    = String[Size2]
	String4    = String[Size4]
	String7    = String[Size7]
	String8    = String[Size8]
	String15   = String[Size15]
	String16   = String[Size16]
	String24   = String[Size24]
	String31   = String[Size31]
	String32   = String[Size32]
	String48   = String[Size48]
	String63   = String[Size63]
	String64   = String[Size64]
	String127  = String[Size127]
	String128  = String[Size128]
	String255  = String[Size255]
	String256  = String[Size256]
	String511  = String[Size511]
	String512  = String[Size512]
	String1023 = String[Size1023]
	String1024 = String[Size1024]
	String2047 = String[Size2047]
	String2048 = String[Size2048]
	String4095 = String[Size4095]
	String4096 = String[Size4096]
)
