//go:build cgo

// Command liblife builds the engine as a C shared library:
//
//	go build -buildmode=c-shared -o liblife.so ./cmd/liblife
//
// Constructors return an opaque handle, 0 on failure. life_next_state returns
// a NUL-terminated text frame owned by the caller, which must hand it back to
// life_free_text exactly once. life_free disposes a handle; 0 is ignored.
// life_shutdown disposes every handle still open.
package main

/*
#include <stdint.h>
#include <stdlib.h>
*/
import "C"

import (
	"log"
	"unsafe"

	"lifegrid/internal/boundary"
	"lifegrid/pkg/life"
)

var (
	engines = boundary.NewTable()
	buffers = boundary.NewLedger()
)

func create(w, h, workers C.int32_t, p life.Pattern) C.uint64_t {
	handle, err := engines.Create(int(w), int(h), p, int(workers))
	if err != nil {
		log.Printf("liblife: %v", err)
		return 0
	}
	return C.uint64_t(handle)
}

//export life_init_empty
func life_init_empty(w, h, workers C.int32_t) C.uint64_t {
	return create(w, h, workers, life.Empty)
}

//export life_init_random
func life_init_random(w, h, workers C.int32_t) C.uint64_t {
	return create(w, h, workers, life.Random)
}

//export life_init_glider
func life_init_glider(w, h, workers C.int32_t) C.uint64_t {
	return create(w, h, workers, life.Glider)
}

//export life_init_blinker
func life_init_blinker(w, h, workers C.int32_t) C.uint64_t {
	return create(w, h, workers, life.Blinker)
}

//export life_next_state
func life_next_state(handle C.uint64_t) *C.char {
	txt, err := engines.Next(boundary.Handle(handle))
	if err != nil {
		log.Printf("liblife: %v", err)
		return nil
	}
	s := C.CString(txt)
	buffers.Track(uintptr(unsafe.Pointer(s)))
	return s
}

//export life_free_text
func life_free_text(s *C.char) {
	if s == nil {
		return
	}
	if err := buffers.Release(uintptr(unsafe.Pointer(s))); err != nil {
		log.Printf("liblife: %v", err)
		return
	}
	C.free(unsafe.Pointer(s))
}

//export life_free
func life_free(handle C.uint64_t) {
	if err := engines.Dispose(boundary.Handle(handle)); err != nil {
		log.Printf("liblife: %v", err)
	}
}

//export life_shutdown
func life_shutdown() {
	if err := engines.Close(); err != nil {
		log.Printf("liblife: %v", err)
	}
	if n := buffers.Outstanding(); n > 0 {
		log.Printf("liblife: %d text buffers never released", n)
	}
}

func main() {}
