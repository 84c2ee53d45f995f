// Package main exports the scan pipeline over a C ABI for foreign
// callers. Build with:
//
//	go build -buildmode=c-shared -o libtoukei.so ./ffi
//
// AnalyzeCode takes a JSON configuration string and returns a JSON result
// string that the caller must release with FreeString.
package main

/*
#include <stdlib.h>
*/
import "C"

import (
	"unsafe"

	"github.com/toukei-tech/toukei/pkg/bridge"
)

// AnalyzeCode runs one scan described by the JSON config and returns the
// JSON result. The returned string is allocated with C malloc; callers
// must pass it to FreeString. A NULL config yields an error response, not
// a crash.
//
//export AnalyzeCode
func AnalyzeCode(jsonConfig *C.char) *C.char {
	if jsonConfig == nil {
		return C.CString(`{"success":false,"error":"input config is null"}`)
	}

	payload := []byte(C.GoString(jsonConfig))

	return C.CString(string(bridge.Analyze(payload)))
}

// FreeString releases a string previously returned by AnalyzeCode.
//
//export FreeString
func FreeString(ptr *C.char) {
	if ptr != nil {
		C.free(unsafe.Pointer(ptr))
	}
}

func main() {}
