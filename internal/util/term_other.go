//go:build !unix

package util

import "os"

func queryWidth(*os.File) int {
	return 0
}
