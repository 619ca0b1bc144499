package telegram

import (
	"fmt"
	"path"
	"strings"
	"time"
)

// PhotoFilename names a downloaded profile photo as {id}_{unixMillis}.jpg.
func PhotoFilename(entityID int64, at time.Time) string {
	return fmt.Sprintf("%d_%d.jpg", entityID, at.UnixMilli())
}

// BuildPhotoURL joins the public photo prefix and a stored filename.
// Returns an empty string if filename is empty.
func BuildPhotoURL(prefix, filename string) string {
	if filename == "" {
		return ""
	}
	prefix = "/" + strings.Trim(prefix, "/")
	return path.Join(prefix, filename)
}
