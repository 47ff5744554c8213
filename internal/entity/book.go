package entity

// Book is a catalog item normalized from a raw Google Books volume.
// Immutable once constructed; identity is the external volume id.
type Book struct {
	ID              string      `json:"id"`
	Title           string      `json:"title"`
	Authors         []string    `json:"authors"`
	AuthorsText     string      `json:"authors_text"`
	Categories      []string    `json:"categories"`
	PrimaryCategory string      `json:"primary_category"`
	AverageRating   float64     `json:"average_rating"`
	RatingsCount    int         `json:"ratings_count"`
	Description     string      `json:"description,omitempty"`
	ImageLinks      *ImageLinks `json:"image_links,omitempty"`
	PublishedDate   string      `json:"published_date,omitempty"`
	Publisher       string      `json:"publisher,omitempty"`
	PageCount       int         `json:"page_count,omitempty"`
	Language        string      `json:"language"`
}

type ImageLinks struct {
	Thumbnail      string `json:"thumbnail,omitempty"`
	SmallThumbnail string `json:"small_thumbnail,omitempty"`
}

// SearchResult is one page of catalog matches.
type SearchResult struct {
	Books      []Book `json:"books"`
	TotalItems int    `json:"total_items"`
	Query      string `json:"query"`
	StartIndex int    `json:"start_index"`
}
