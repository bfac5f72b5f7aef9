package models

// Note is a single text entry owned by exactly one user, optionally paired
// with an image stored in the app's asset directory.
type Note struct {
	// ID is unique within the owner's collection and never reused,
	// even after deletion.
	ID string `json:"id"`

	Title string `json:"title"`
	Body  string `json:"body"`

	// ImageURI is the path of the durably stored image, or empty when the
	// note has no image.
	ImageURI string `json:"imageUri,omitempty"`

	// CreatedAt is set once at creation, in epoch milliseconds.
	CreatedAt int64 `json:"createdAt"`

	// UpdatedAt is set at creation and on every save.
	UpdatedAt int64 `json:"updatedAt"`
}
