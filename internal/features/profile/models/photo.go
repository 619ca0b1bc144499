package models

// CachedPhoto remembers which remote photo a stored file was downloaded from
type CachedPhoto struct {
	PhotoID  int64  `json:"photo_id"`
	Filename string `json:"filename"`
}
