package registry

import "strings"

// segmentList implements the canonical rule for combining a working
// directory with a relative or absolute cd argument. pwd must already be
// absolute ("" or starting with "/") and free of "." / ".." segments; cd may
// be relative, absolute, or contain "." / ".." / empty segments.
func segmentList(pwd, cd string) ([]string, error) {
	segments := make([]string, 0, 8)

	pwdParts := strings.Split(pwd, "/")
	for i, seg := range pwdParts {
		if i == 0 && seg != "" {
			return nil, errIllegalPathNavigation(pwd, cd, "invalid path segment name")
		}
		if seg == "." || seg == ".." {
			return nil, errIllegalPathNavigation(pwd, cd, "invalid path segment name")
		}
		if seg != "" {
			segments = append(segments, seg)
		}
	}

	cdParts := strings.Split(cd, "/")
	for i, seg := range cdParts {
		if i == 0 && seg == "" {
			segments = segments[:0]
			continue
		}
		switch seg {
		case "..":
			if len(segments) == 0 {
				return nil, errIllegalPathNavigation(pwd, cd, "navigation beyond root")
			}
			segments = segments[:len(segments)-1]
		case ".", "":
			// skip
		default:
			segments = append(segments, seg)
		}
	}

	return segments, nil
}

// canonicalPath joins segments with a "/" prefix; an empty list denotes the
// root, "/".
func canonicalPath(pwd, cd string) (string, error) {
	segs, err := segmentList(pwd, cd)
	if err != nil {
		return "", err
	}
	return joinSegments(segs), nil
}

func joinSegments(segs []string) string {
	if len(segs) == 0 {
		return "/"
	}
	return "/" + strings.Join(segs, "/")
}

// CanonicalPath is the exported form of canonicalPath: it combines pwd and
// cd into an absolute path without consulting the tree.
func CanonicalPath(pwd, cd string) (string, error) {
	return canonicalPath(pwd, cd)
}
