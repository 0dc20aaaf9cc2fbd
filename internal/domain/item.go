package domain

import "strings"

type ItemID string

// MaxItemImages is the upload limit the backend enforces per item.
const MaxItemImages = 3

// Item is a donation listing. It is created by a donor and deleted by its
// owning donor or an admin; ownership never transfers.
type Item struct {
	ID          ItemID
	Title       string
	Description string
	Location    string
	Images      []string
	DonorID     UserID
	DonorName   string
}

// ItemDraft is the donor's input for a new listing. ImagePaths are local
// files uploaded as multipart parts, at most MaxItemImages of them.
type ItemDraft struct {
	Title       string
	Description string
	Location    string
	ImagePaths  []string
}

func (d ItemDraft) Validate() error {
	if d.Title == "" || d.Description == "" || d.Location == "" {
		return ErrValidation
	}
	if len(d.ImagePaths) == 0 || len(d.ImagePaths) > MaxItemImages {
		return ErrValidation
	}
	return nil
}

// ImageURL turns an image reference as the backend returns it into a
// fetchable URL. References are usually relative paths with Windows-style
// separators; absolute URLs pass through untouched.
func ImageURL(baseURL, ref string) string {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	normalized := strings.ReplaceAll(ref, `\`, "/")
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(normalized, "/")
}
