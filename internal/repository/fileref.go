package repository

import (
	"net/url"
	"strings"
)

// NormalizeFileRef repairs stored file references written by earlier
// revisions of the uploader: references missing a scheme and references
// with duplicated path segments (e.g. /uploads/uploads/x.txt). Applied
// once at scan time; callers above the repository always receive a fully
// resolved URL.
func NormalizeFileRef(ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}

	if !strings.Contains(ref, "://") {
		ref = "https://" + strings.TrimLeft(ref, "/")
	}

	u, err := url.Parse(ref)
	if err != nil {
		return ref
	}

	segments := strings.Split(u.Path, "/")
	cleaned := make([]string, 0, len(segments))
	for _, seg := range segments {
		if seg == "" {
			continue
		}
		if len(cleaned) > 0 && cleaned[len(cleaned)-1] == seg {
			continue
		}
		cleaned = append(cleaned, seg)
	}

	if len(cleaned) == 0 {
		u.Path = ""
	} else {
		u.Path = "/" + strings.Join(cleaned, "/")
	}
	return u.String()
}
