package entity

// Review is a user-authored rating for a book. BookID references an
// external catalog id and is not checked against the current result set.
type Review struct {
	ID        string `json:"id"`
	BookID    string `json:"book_id"`
	Rating    int    `json:"rating"`
	Text      string `json:"text"`
	Username  string `json:"username"`
	Timestamp int64  `json:"timestamp"` // epoch millis
}
