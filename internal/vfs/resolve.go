package vfs

import "strings"

// Resolve turns a possibly-relative input path plus the current working
// directory into a normalized absolute path. Purely lexical: "." is
// dropped, ".." pops one segment and silently floors at root, no
// existence check is performed.
func Resolve(cwd, input string) string {
	if input == "" {
		return cwd
	}
	var stack []string
	if !strings.HasPrefix(input, "/") {
		for _, seg := range strings.Split(cwd, "/") {
			if seg != "" {
				stack = append(stack, seg)
			}
		}
	}
	for _, seg := range strings.Split(input, "/") {
		switch seg {
		case "", ".":
		case "..":
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		default:
			stack = append(stack, seg)
		}
	}
	return "/" + strings.Join(stack, "/")
}
