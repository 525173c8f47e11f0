package data

import "strings"

// PathSeparator separates segments of a dotted lookup path, e.g.
// "subdir1.subdir2.file.txt". Literal dots inside node names are allowed
// but cannot be escaped, so lookups always try the whole remaining path
// as a direct child before splitting on the first separator.
const PathSeparator = "."

// SplitPath splits a dotted path on the first separator. The returned
// remainder is empty when the path holds a single segment.
func SplitPath(path string) (head, rest string) {
	if idx := strings.Index(path, PathSeparator); idx >= 0 {
		return path[:idx], path[idx+1:]
	}

	return path, ""
}

// JoinPath joins path segments with the separator, skipping empty ones.
func JoinPath(segments ...string) string {
	parts := make([]string, 0, len(segments))
	for _, segment := range segments {
		if segment != "" {
			parts = append(parts, segment)
		}
	}

	return strings.Join(parts, PathSeparator)
}
