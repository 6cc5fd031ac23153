//go:build !cachelab_debug

package ring

func assert(bool, string) {}
