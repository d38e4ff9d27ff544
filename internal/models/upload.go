package models

// UploadedImage is the media host's answer to an image upload: a stable
// public URL plus the host-side identifier of the stored asset.
type UploadedImage struct {
	URL      string `json:"imageUrl"`
	PublicID string `json:"publicId"`
}
