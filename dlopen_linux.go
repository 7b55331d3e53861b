//go:build linux && cgo

// dlopen_linux.go - optional adapter for the original dynamic hash-library
// discovery convention, preserved for interoperability with compiled
// hashlib0.so .. hashlib9.so libraries from the original tool. Not used
// by the default in-process Registry and not exercised by the test
// suite; it is compiled only on linux with cgo enabled.
//
// (c) 2024 the go-rainbow authors
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim is made to its
// suitability for any purpose.

package rainbow

/*
#cgo LDFLAGS: -ldl
#include <dlfcn.h>
#include <stdlib.h>

// Matches the original tool's hashFuncPtr ABI: the caller owns the output
// buffer and passes it in, rather than the callee returning an allocation
// and an out-length. buf must be at least hash_len bytes, per the
// corresponding hash_func_entry_c.hash_len.
typedef unsigned char *(*hash_fn_t)(unsigned int seed, unsigned char *buf);

typedef struct {
	const char *name;
	hash_fn_t   fn;
	int         hash_len;
} hash_func_entry_c;

static void *rainbow_dlopen(const char *path) {
	return dlopen(path, RTLD_NOW);
}

static void *rainbow_dlsym(void *handle, const char *sym) {
	return dlsym(handle, sym);
}
*/
import "C"

import (
	"fmt"
	"unsafe"
)

// DlopenRegistry loads hash functions from up to 10 shared libraries,
// named hashlib0.so through hashlib9.so under dir, each exporting a
// symbol "hashFuncArray": a NUL-terminated C array of {name, fn,
// hash_len} entries. Every discovered entry is registered into dst
// under the (name, fn, hashLen) contract used by the rest of this
// package.
func DlopenRegistry(dir string, dst *Registry) error {
	for i := 0; i < 10; i++ {
		path := fmt.Sprintf("%s/hashlib%d.so", dir, i)

		cpath := C.CString(path)
		handle := C.rainbow_dlopen(cpath)
		C.free(unsafe.Pointer(cpath))
		if handle == nil {
			continue
		}

		csym := C.CString("hashFuncArray")
		arr := C.rainbow_dlsym(handle, csym)
		C.free(unsafe.Pointer(csym))
		if arr == nil {
			continue
		}

		if err := registerDlopenEntries(dst, arr); err != nil {
			return fmt.Errorf("dlopen registry: %s: %w", path, err)
		}
	}

	return nil
}

func registerDlopenEntries(dst *Registry, arr unsafe.Pointer) error {
	entries := (*[1 << 16]C.hash_func_entry_c)(arr)

	for i := 0; ; i++ {
		e := entries[i]
		if e.name == nil {
			break
		}

		name := C.GoString(e.name)
		fn := e.fn
		hashLen := int(e.hash_len)

		dst.Register(name, func(seed uint32) []byte {
			buf := make([]byte, hashLen)
			C.hash_fn_t(fn)(C.uint(seed), (*C.uchar)(unsafe.Pointer(&buf[0])))
			return buf
		}, hashLen)
	}

	return nil
}
