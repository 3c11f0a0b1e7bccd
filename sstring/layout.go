package sstring

import (
	"fmt"
	"unsafe"
)

func init() {
	checkLayout[Size1](1)
	checkLayout[Size2](2)
	checkLayout[Size4](4)
	checkLayout[Size7](7)
	checkLayout[Size8](8)
	checkLayout[Size15](15)
	checkLayout[Size16](16)
	checkLayout[Size24](24)
	checkLayout[Size31](31)
	checkLayout[Size32](32)
	checkLayout[Size48](48)
	checkLayout[Size63](63)
	checkLayout[Size64](64)
	checkLayout[Size127](127)
	checkLayout[Size128](128)
	checkLayout[Size255](255)
	checkLayout[Size256](256)
	checkLayout[Size511](511)
	checkLayout[Size512](512)
	checkLayout[Size1023](1023)
	checkLayout[Size1024](1024)
	checkLayout[Size2047](2047)
	checkLayout[Size2048](2048)
	checkLayout[Size4095](4095)
	checkLayout[Size4096](4096)
}

// checkLayout panics unless String[B] is exactly its buffer: capacity+1 bytes
// with nothing stored beside it.
func checkLayout[B Buffer](capacity int) {
	var s String[B]
	if size := unsafe.Sizeof(s); size != uintptr(capacity+1) {
		panic(fmt.Sprintf("sizeof String[%T] = %d, expected = %d", s.b, size, capacity+1))
	}
	if s.Cap() != capacity {
		panic(fmt.Sprintf("String[%T].Cap() = %d, expected = %d", s.b, s.Cap(), capacity))
	}
}
